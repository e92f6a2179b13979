// Package model はドメインモデルを定義する。
package model

// User はサービス利用ユーザーを表す。
// usernameが一意キー。本APIでは読み取り専用（作成・更新の経路は持たない）。
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
