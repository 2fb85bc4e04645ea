package admin

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin 后台管理员
//
// 设计说明:
// 密码只保存bcrypt哈希, 明文不落库也不出现在实体字段上
type Admin struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希
	Nickname  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAdmin 创建管理员(工厂方法)
func NewAdmin(email, password, nickname string) (*Admin, error) {
	a := &Admin{
		Email:    email,
		Nickname: nickname,
		IsActive: true,
	}
	if err := a.SetPassword(password); err != nil {
		return nil, err
	}
	return a, nil
}

// SetPassword 设置密码(bcrypt加密)
func (a *Admin) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

// CheckPassword 校验密码
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}
