package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xiebiao/storefront/internal/domain/admin"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/sqlite"
)

// adminctl 管理员账号工具
// 服务没有开放注册接口,管理员账号通过这个工具创建:
//
//	go run ./cmd/adminctl -email admin@example.com -password changeme123 -nickname 运营
func main() {
	email := flag.String("email", "", "管理员邮箱(必填)")
	password := flag.String("password", "", "登录密码(必填,至少8位)")
	nickname := flag.String("nickname", "", "昵称(默认取邮箱)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		log.Fatal("密码至少8位")
	}
	if *nickname == "" {
		*nickname = *email
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	db, err := sqlite.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	a, err := admin.NewAdmin(*email, *password, *nickname)
	if err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := sqlite.NewAdminRepository(db)
	if err := repo.Create(ctx, a); err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	fmt.Printf("管理员已创建: id=%d email=%s\n", a.ID, a.Email)
}
