// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry. Posts are not linked to their author.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostInput is the body of POST /posts.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Pagination describes a page of the post list.
// Limit is clamped by the service to the configured maximum.
type Pagination struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}
