package repository

import (
	"testing"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/contenttest"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

const (
	rootID     = contenttest.RootID
	postsID    = contenttest.PostsID
	projectsID = contenttest.ProjectsID
	contactsID = contenttest.ContactsID
	homeID     = contenttest.HomeID
	seriesID   = contenttest.SeriesID
)

func workspace(t *testing.T) *notiontest.Fake {
	t.Helper()

	return contenttest.Workspace()
}

func post(id, title, slugValue, date string, published bool, extra map[string]notion.Property) notion.Page {
	return contenttest.Post(id, title, slugValue, date, published, extra)
}

func newBlog(fake *notiontest.Fake) *Blog {
	return NewBlog(content.NewSource(fake, rootID, 30*time.Second, content.DefaultSite()))
}
