// Package security はアプリケーションのセキュリティ機能を提供する。
//
// CommentSanitizer はコメント本文をサニタイズし、XSS攻撃などの
// セキュリティリスクからユーザーを保護する。コメントはプレーンテキストとして
// 扱うため、bluemondayのStrictPolicyですべてのHTMLタグを除去する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// commentSanitizer はコメント本文のサニタイザー実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type commentSanitizer struct {
	policy *bluemonday.Policy
}

// NewCommentSanitizer はコメント本文用サニタイザーの新しいインスタンスを生成する。
// ポリシーの内容:
//   - すべてのHTMLタグと属性を除去する（StrictPolicy）
//   - 前後の空白を除去する
//   - 同一入力に対して常に同一出力を返す（冪等）
func NewCommentSanitizer() *commentSanitizer {
	return &commentSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はコメント本文からHTMLタグ等を除去したテキストを返す。
func (s *commentSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
