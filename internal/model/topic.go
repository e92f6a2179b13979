// Package model はドメインモデルを定義する。
package model

// Topic は記事のカテゴリを表す。
// slugが一意キーで、シード後は不変として扱う。
type Topic struct {
	Slug        string
	Description string
}
