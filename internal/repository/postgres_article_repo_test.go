package repository

import (
	"testing"

	"github.com/hitoshi/newsboard/internal/model"
)

// TestSortColumn は全ソートキーが固定のカラム/集計式に解決されることをテストする。
// ユーザー入力がそのままクエリに到達する経路がないことを保証する。
func TestSortColumn(t *testing.T) {
	tests := []struct {
		key  model.SortKey
		want string
	}{
		{model.SortKeyAuthor, "a.author"},
		{model.SortKeyTitle, "a.title"},
		{model.SortKeyArticleID, "a.article_id"},
		{model.SortKeyTopic, "a.topic"},
		{model.SortKeyVotes, "a.votes"},
		{model.SortKeyCommentCount, "comment_count"},
		{model.SortKeyCreatedAt, "a.created_at"},
	}
	for _, tt := range tests {
		if got := sortColumn(tt.key); got != tt.want {
			t.Errorf("sortColumn(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// TestSortColumn_UnknownKeyFallsBack は許可リスト外のキーがデフォルトの
// created_atに落ち、入力文字列がそのまま返らないことをテストする。
func TestSortColumn_UnknownKeyFallsBack(t *testing.T) {
	got := sortColumn(model.SortKey("votes; DROP TABLE articles;"))
	if got != "a.created_at" {
		t.Errorf("sortColumn(unknown) = %q, want a.created_at", got)
	}
}

// TestSortDirection はソート方向の解決をテストする。
func TestSortDirection(t *testing.T) {
	if got := sortDirection(model.SortOrderAsc); got != "ASC" {
		t.Errorf("sortDirection(asc) = %q, want ASC", got)
	}
	if got := sortDirection(model.SortOrderDesc); got != "DESC" {
		t.Errorf("sortDirection(desc) = %q, want DESC", got)
	}
	// 不明な値は昇順に倒さずDESCに落とす
	if got := sortDirection(model.SortOrder("sideways")); got != "DESC" {
		t.Errorf("sortDirection(unknown) = %q, want DESC", got)
	}
}
