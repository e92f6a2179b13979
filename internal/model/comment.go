// Package model はドメインモデルを定義する。
package model

import "time"

// Comment は記事に紐づくコメントを表す。
// article_idは挿入時点で実在する記事を参照していなければならない
// （ストレージ制約ではなくバリデーション層の存在チェックで保証する）。
// 作成と削除のみをサポートし、更新の経路は持たない。
type Comment struct {
	CommentID int
	ArticleID int
	Author    string // users.usernameへの参照
	Body      string
	Votes     int
	CreatedAt time.Time // 挿入時にサーバー側で付与
}
