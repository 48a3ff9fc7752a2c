// hashgen 生成用户密码的 bcrypt 哈希，填入配置文件的 users[].password_hash
//
// 用法: hashgen -password <明文密码> [-cost 10]
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := flag.String("password", "", "要哈希的明文密码")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt 代价因子 (4-31)")
	flag.Parse()

	if *password == "" {
		log.Fatal("请通过 -password 提供密码")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), *cost)
	if err != nil {
		log.Fatalf("生成哈希失败: %v", err)
	}

	fmt.Println(string(hash))
}
