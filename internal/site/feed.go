package site

import (
	"fmt"

	"github.com/gorilla/feeds"

	"github.com/Bitlatte/developmental/internal/model"
	"github.com/Bitlatte/developmental/internal/route"
)

// Feed renders an RSS 2.0 document with one item per post, in the order given.
// The rendered post body goes into content:encoded.
func Feed(meta model.SiteMetadata, posts []*model.Post) ([]byte, error) {
	feed := &feeds.Feed{
		Title:       meta.Title,
		Link:        &feeds.Link{Href: route.Absolute(meta.SiteURL, route.IndexPath)},
		Description: meta.Description,
	}
	if len(posts) > 0 {
		feed.Created = posts[0].Date
	}
	for _, p := range posts {
		link := route.Absolute(meta.SiteURL, route.PostPath(p.Slug))
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Created:     p.Date,
			Description: p.Lede(),
			Content:     string(p.HTML),
		})
	}

	out, err := feed.ToRss()
	if err != nil {
		return nil, fmt.Errorf("failed to encode feed: %w", err)
	}
	return []byte(out), nil
}
