package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// seedTopic / seedUser / seedArticle / seedComment は開発用フィクスチャの行データ。
type seedTopic struct {
	slug        string
	description string
}

type seedUser struct {
	username  string
	name      string
	avatarURL string
}

type seedArticle struct {
	title     string
	body      string
	votes     int
	topic     string
	author    string
	createdAt time.Time
}

type seedComment struct {
	author    string
	articleID int
	votes     int
	body      string
	createdAt time.Time
}

// Seed は開発用フィクスチャをデータベースに投入する。
// 既存データはすべて削除され、IDシーケンスはリセットされる。
// 本番環境での実行は想定していない。
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`,
	); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	for _, t := range devTopics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.slug, t.description,
		); err != nil {
			return fmt.Errorf("failed to seed topic %s: %w", t.slug, err)
		}
	}

	for _, u := range devUsers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.username, u.name, u.avatarURL,
		); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	// RESTART IDENTITYによりarticle_idは挿入順に1から振られるため、
	// コメントは固定のarticle_idを参照できる。
	for _, a := range devArticles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (title, body, votes, topic, author, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			a.title, a.body, a.votes, a.topic, a.author, a.createdAt,
		); err != nil {
			return fmt.Errorf("failed to seed article %q: %w", a.title, err)
		}
	}

	for _, c := range devComments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO comments (author, article_id, votes, body, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.author, c.articleID, c.votes, c.body, c.createdAt,
		); err != nil {
			return fmt.Errorf("failed to seed comment on article %d: %w", c.articleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}

func seedTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

var devTopics = []seedTopic{
	{slug: "mitch", description: "The man, the Mitch, the legend"},
	{slug: "cats", description: "Not dogs"},
	{slug: "paper", description: "what books are made of"},
}

var devUsers = []seedUser{
	{
		username:  "butter_bridge",
		name:      "jonny",
		avatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
	},
	{
		username:  "icellusedkars",
		name:      "sam",
		avatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
	},
	{
		username:  "rogersop",
		name:      "paul",
		avatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
	},
	{
		username:  "lurker",
		name:      "do_nothing",
		avatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
	},
}

var devArticles = []seedArticle{
	{
		title:     "Living in the shadow of a great man",
		body:      "I find this existence challenging",
		votes:     100,
		topic:     "mitch",
		author:    "butter_bridge",
		createdAt: seedTime("2020-07-09T20:11:00Z"),
	},
	{
		title:     "Sony Vaio; or, The Laptop",
		body:      "Call me Mitchell. Some years ago, never mind how long precisely, I thought I would get a laptop.",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-10-16T05:03:00Z"),
	},
	{
		title:     "Eight pug gifs that remind me of mitch",
		body:      "some gifs",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-11-03T09:12:00Z"),
	},
	{
		title:     "Student SUES Mitch!",
		body:      "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY driven one student to extreme measures.",
		votes:     0,
		topic:     "mitch",
		author:    "rogersop",
		createdAt: seedTime("2020-05-06T01:14:00Z"),
	},
	{
		title:     "UNCOVERED: catspiracy to bring down democracy",
		body:      "Bastet walks amongst us, and the cats are taking arms!",
		votes:     0,
		topic:     "cats",
		author:    "rogersop",
		createdAt: seedTime("2020-08-03T13:14:00Z"),
	},
	{
		title:     "A",
		body:      "Delicious tin of cat food",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-10-18T01:00:00Z"),
	},
	{
		title:     "Z",
		body:      "I was hungry.",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-01-07T14:08:00Z"),
	},
	{
		title:     "Does Mitch predate civilisation?",
		body:      "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch.",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-04-17T01:08:00Z"),
	},
	{
		title:     "They're not exactly dogs, are they?",
		body:      "Well? Think about it.",
		votes:     0,
		topic:     "mitch",
		author:    "butter_bridge",
		createdAt: seedTime("2020-06-06T09:10:00Z"),
	},
	{
		title:     "Seven inspirational thought leaders from Manchester UK",
		body:      "Who are we kidding, there is only one, and it's Mitch!",
		votes:     0,
		topic:     "mitch",
		author:    "rogersop",
		createdAt: seedTime("2020-05-14T04:15:00Z"),
	},
	{
		title:     "Am I a cat?",
		body:      "Having run out of ideas for articles, I am staring at my cat at a loss for inspiration. Does this make me a cat?",
		votes:     0,
		topic:     "mitch",
		author:    "icellusedkars",
		createdAt: seedTime("2020-01-15T22:21:00Z"),
	},
	{
		title:     "Moustache",
		body:      "Have you seen the size of that thing?",
		votes:     0,
		topic:     "mitch",
		author:    "butter_bridge",
		createdAt: seedTime("2020-10-11T11:24:00Z"),
	},
}

var devComments = []seedComment{
	{
		author:    "butter_bridge",
		articleID: 9,
		votes:     16,
		body:      "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		createdAt: seedTime("2020-04-06T12:17:00Z"),
	},
	{
		author:    "butter_bridge",
		articleID: 9,
		votes:     14,
		body:      "The beautiful thing about treasure is that it exists.",
		createdAt: seedTime("2020-10-31T03:03:00Z"),
	},
	{
		author:    "icellusedkars",
		articleID: 1,
		votes:     100,
		body:      "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.",
		createdAt: seedTime("2020-02-23T12:01:00Z"),
	},
	{
		author:    "icellusedkars",
		articleID: 1,
		votes:     -1,
		body:      "I hate streaming noses",
		createdAt: seedTime("2020-11-03T21:00:00Z"),
	},
	{
		author:    "icellusedkars",
		articleID: 1,
		votes:     0,
		body:      "I hate streaming eyes even more",
		createdAt: seedTime("2020-04-11T21:02:00Z"),
	},
	{
		author:    "butter_bridge",
		articleID: 1,
		votes:     1,
		body:      "This morning, I showered for nine minutes.",
		createdAt: seedTime("2020-07-21T00:20:00Z"),
	},
	{
		author:    "icellusedkars",
		articleID: 5,
		votes:     0,
		body:      "I am 100% sure that we're not completely sure.",
		createdAt: seedTime("2020-11-24T00:08:00Z"),
	},
	{
		author:    "butter_bridge",
		articleID: 6,
		votes:     1,
		body:      "This is a bad article name",
		createdAt: seedTime("2020-10-11T15:23:00Z"),
	},
	{
		author:    "rogersop",
		articleID: 4,
		votes:     4,
		body:      "I carry a log. Yes. Is it funny to you? It is not to me.",
		createdAt: seedTime("2020-02-01T10:10:00Z"),
	},
	{
		author:    "rogersop",
		articleID: 3,
		votes:     10,
		body:      "git push origin master",
		createdAt: seedTime("2020-06-20T07:24:00Z"),
	},
	{
		author:    "icellusedkars",
		articleID: 3,
		votes:     0,
		body:      "Ambidextrous marsupial",
		createdAt: seedTime("2020-09-19T23:10:00Z"),
	},
}
