package config

import _ "embed"

// DefaultConfigYAML 嵌入的默认配置
// 生产部署必须通过外部配置文件或环境变量覆盖 jwt.secret、users 和外发服务凭证
//
//go:embed default.yaml
var DefaultConfigYAML []byte
