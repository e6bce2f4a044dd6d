package steam

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// App is one entry of the Steam app directory.
type App struct {
	ID   int64  `json:"appid"`
	Name string `json:"name"`
}

type Screenshot struct {
	ID        int64  `json:"id"`
	Thumbnail string `json:"path_thumbnail"`
	Full      string `json:"path_full"`
}

// AppDetails is the typed view of an appdetails "data" object. Missing
// optional fields are empty, never nil, except MetacriticScore.
type AppDetails struct {
	AppID               int64
	Name                string
	ShortDescription    string
	DetailedDescription string
	Developers          []string
	Publishers          []string
	ReleaseDate         string
	HeaderImage         string
	Screenshots         []Screenshot
	Genres              []string
	Categories          []string
	MetacriticScore     *int
}

// Description prefers the short description.
func (d AppDetails) Description() string {
	if d.ShortDescription != "" {
		return d.ShortDescription
	}
	return d.DetailedDescription
}

type SearchResult struct {
	AppID int64  `json:"app_id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Logo  string `json:"logo,omitempty"`
}

func parseAppList(body []byte) ([]App, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid app list payload", ErrUnavailable)
	}
	list := gjson.GetBytes(body, "applist.apps")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: app list missing applist.apps", ErrUnavailable)
	}

	apps := make([]App, 0, len(list.Array()))
	list.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("name").String()
		if name == "" {
			return true
		}
		apps = append(apps, App{ID: v.Get("appid").Int(), Name: name})
		return true
	})
	return apps, nil
}

func parseAppDetails(body []byte, appID int64) (AppDetails, error) {
	if !gjson.ValidBytes(body) {
		return AppDetails{}, fmt.Errorf("%w: invalid appdetails payload", ErrUnavailable)
	}
	root := gjson.GetBytes(body, formatAppID(appID))
	if !root.Get("success").Bool() {
		return AppDetails{}, fmt.Errorf("%w: %d", ErrRejected, appID)
	}
	data := root.Get("data")

	d := AppDetails{
		AppID:               appID,
		Name:                data.Get("name").String(),
		ShortDescription:    data.Get("short_description").String(),
		DetailedDescription: data.Get("detailed_description").String(),
		Developers:          stringList(data.Get("developers")),
		Publishers:          stringList(data.Get("publishers")),
		ReleaseDate:         data.Get("release_date.date").String(),
		HeaderImage:         data.Get("header_image").String(),
		Screenshots:         []Screenshot{},
		Genres:              descriptions(data.Get("genres")),
		Categories:          descriptions(data.Get("categories")),
	}

	data.Get("screenshots").ForEach(func(_, v gjson.Result) bool {
		d.Screenshots = append(d.Screenshots, Screenshot{
			ID:        v.Get("id").Int(),
			Thumbnail: v.Get("path_thumbnail").String(),
			Full:      v.Get("path_full").String(),
		})
		return true
	})

	if score := data.Get("metacritic.score"); score.Exists() && score.Type == gjson.Number {
		n := int(score.Int())
		d.MetacriticScore = &n
	}
	return d, nil
}

func parseSearchResults(body []byte, limit int) ([]SearchResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid search payload", ErrUnavailable)
	}
	results := []SearchResult{}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return results, nil
	}
	root.ForEach(func(_, v gjson.Result) bool {
		if limit > 0 && len(results) >= limit {
			return false
		}
		results = append(results, SearchResult{
			AppID: v.Get("appid").Int(),
			Name:  v.Get("name").String(),
			Icon:  v.Get("icon").String(),
			Logo:  v.Get("logo").String(),
		})
		return true
	})
	return results, nil
}

func stringList(r gjson.Result) []string {
	out := []string{}
	r.ForEach(func(_, v gjson.Result) bool {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}

// descriptions flattens [{id, description}] lists.
func descriptions(r gjson.Result) []string {
	out := []string{}
	r.ForEach(func(_, v gjson.Result) bool {
		if s := v.Get("description").String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
