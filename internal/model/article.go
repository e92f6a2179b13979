// Package model はドメインモデルを定義する。
package model

import "time"

// Article は記事を表す。
// votesは原子的なインクリメント（votes = votes + delta）でのみ変化する。
type Article struct {
	ArticleID int
	Author    string // users.usernameへの参照
	Title     string
	Body      string
	Topic     string // topics.slugへの参照
	CreatedAt time.Time
	Votes     int
}

// ArticleWithCount は記事とコメント数を結合したモデル。
// comment_countはcommentsテーブルとのLEFT JOINで読み取り時に毎回集計され、
// 記事側には保存されない。コメントが0件の記事はcomment_count=0で返る。
type ArticleWithCount struct {
	Article
	CommentCount int
}
