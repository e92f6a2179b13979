// Package model はドメインモデルを定義する。
package model

// SortKey は記事一覧のソートキーを表す。
type SortKey string

const (
	// SortKeyAuthor は投稿者名でのソートを表す。
	SortKeyAuthor SortKey = "author"
	// SortKeyTitle はタイトルでのソートを表す。
	SortKeyTitle SortKey = "title"
	// SortKeyArticleID は記事IDでのソートを表す。
	SortKeyArticleID SortKey = "article_id"
	// SortKeyTopic はトピックでのソートを表す。
	SortKeyTopic SortKey = "topic"
	// SortKeyCreatedAt は作成日時でのソートを表す（デフォルト）。
	SortKeyCreatedAt SortKey = "created_at"
	// SortKeyVotes は投票数でのソートを表す。
	SortKeyVotes SortKey = "votes"
	// SortKeyCommentCount はコメント数でのソートを表す。
	SortKeyCommentCount SortKey = "comment_count"
)

// validSortKeys は許可されたソートキーのセット。
// ここに含まれない値はクエリに渡す前に拒否される。
var validSortKeys = map[SortKey]bool{
	SortKeyAuthor:       true,
	SortKeyTitle:        true,
	SortKeyArticleID:    true,
	SortKeyTopic:        true,
	SortKeyCreatedAt:    true,
	SortKeyVotes:        true,
	SortKeyCommentCount: true,
}

// IsValid はソートキーが許可リストに含まれるかを返す。
func (k SortKey) IsValid() bool {
	return validSortKeys[k]
}

// SortOrder は記事一覧のソート方向を表す。
type SortOrder string

const (
	// SortOrderAsc は昇順を表す。
	SortOrderAsc SortOrder = "asc"
	// SortOrderDesc は降順を表す（デフォルト）。
	SortOrderDesc SortOrder = "desc"
)

// IsValid はソート方向がasc/descのいずれかであるかを返す。
func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
