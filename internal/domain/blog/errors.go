package blog

import "errors"

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrSlugExists   = errors.New("blog slug already exists")
)
