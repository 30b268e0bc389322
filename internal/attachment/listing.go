package attachment

import (
	"sort"
	"strings"
	"time"

	"github.com/xblinx/attachments/internal/storage"
)

const (
	lastModifiedLayout = "01/02/2006 03:04 PM"
	sortKeyLayout      = "2006-01-02 15:04:05"

	// Objects this small are folder placeholders written by S3 consoles.
	minObjectSize = 2
)

// Item is one row of a file listing.
type Item struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Day          string `json:"day"`

	sortKey string
}

// Listing is the result of listing an entity's files.
type Listing struct {
	Items      []Item
	TotalCount int
}

func listable(o storage.Object) bool {
	return o.Size >= minObjectSize
}

func buildListing(objects []storage.Object, loc *time.Location) *Listing {
	items := make([]Item, 0, len(objects))
	for _, o := range objects {
		if !listable(o) {
			continue
		}
		t := o.LastModified.In(loc)
		items = append(items, Item{
			Name:         o.Name(),
			LastModified: t.Format(lastModifiedLayout),
			Day:          strings.ToUpper(t.Weekday().String()),
			sortKey:      t.Format(sortKeyLayout),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortKey > items[j].sortKey
	})

	return &Listing{Items: items, TotalCount: len(items)}
}
