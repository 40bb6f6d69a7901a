// Package index orders posts newest first and resolves each post's
// neighbours in that order.
package index

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Bitlatte/developmental/internal/model"
)

var (
	// ErrNotFound is returned when resolving a slug the index does not hold.
	ErrNotFound = errors.New("post not found in index")
	// ErrUndated is returned when a post without a date is indexed.
	ErrUndated = errors.New("post has no date")
)

// Index is the ordered sequence of posts, newest first. Posts that share a
// date keep the order they were supplied in.
type Index struct {
	posts    []*model.Post
	position map[string]int
}

// Build sorts posts by date, descending. The input slice is not modified.
func Build(posts []*model.Post) (Index, error) {
	for _, p := range posts {
		if p.Date.IsZero() {
			return Index{}, fmt.Errorf("%w: %s", ErrUndated, p.SourcePath)
		}
	}

	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b *model.Post) int {
		return b.Date.Compare(a.Date)
	})

	position := make(map[string]int, len(sorted))
	for i, p := range sorted {
		position[p.Slug] = i
	}
	return Index{posts: sorted, position: position}, nil
}

func (idx Index) Len() int { return len(idx.posts) }

// Posts returns the posts in index order.
func (idx Index) Posts() []*model.Post { return slices.Clone(idx.posts) }

// Summaries returns a summary of every post in index order.
func (idx Index) Summaries() []model.PostSummary {
	out := make([]model.PostSummary, len(idx.posts))
	for i, p := range idx.posts {
		out[i] = p.Summary()
	}
	return out
}

// Lookup returns the post with the given slug.
func (idx Index) Lookup(slug string) (*model.Post, bool) {
	i, ok := idx.position[slug]
	if !ok {
		return nil, false
	}
	return idx.posts[i], true
}

// Resolve returns the neighbours of the post with the given slug. Next is the
// newer post (one position earlier), Previous the older one.
func (idx Index) Resolve(slug string) (model.Adjacency, error) {
	i, ok := idx.position[slug]
	if !ok {
		return model.Adjacency{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return idx.at(i), nil
}

// ResolveAll computes the adjacency of every post once, keyed by slug.
func (idx Index) ResolveAll() map[string]model.Adjacency {
	out := make(map[string]model.Adjacency, len(idx.posts))
	for i, p := range idx.posts {
		out[p.Slug] = idx.at(i)
	}
	return out
}

func (idx Index) at(i int) model.Adjacency {
	adj := model.Adjacency{Previous: model.None(), Next: model.None()}
	if i > 0 {
		adj.Next = model.Some(idx.posts[i-1].Summary())
	}
	if i < len(idx.posts)-1 {
		adj.Previous = model.Some(idx.posts[i+1].Summary())
	}
	return adj
}
