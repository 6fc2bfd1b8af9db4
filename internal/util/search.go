package util

import (
	"regexp"
	"strconv"
	"strings"
)

// FilterQuery is the parsed form of the task list filter, for example
// "status:blocked id:4 deploy".
type FilterQuery struct {
	Status []string
	IDs    []int64
	Text   []string
}

var (
	statusRegex = regexp.MustCompile(`status:(\w+)`)
	idRegex     = regexp.MustCompile(`id:(\d+)`)
)

// ParseFilterQuery breaks down a raw query string into its structured components.
func ParseFilterQuery(query string) FilterQuery {
	fq := FilterQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, match[1])
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	for _, s := range extract(statusRegex) {
		fq.Status = append(fq.Status, strings.ToLower(s))
	}
	for _, raw := range extract(idRegex) {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			fq.IDs = append(fq.IDs, id)
		}
	}
	for _, w := range strings.Fields(query) {
		fq.Text = append(fq.Text, strings.ToLower(w))
	}
	return fq
}

// Empty reports whether the query filters nothing out.
func (q FilterQuery) Empty() bool {
	return len(q.Status) == 0 && len(q.IDs) == 0 && len(q.Text) == 0
}

// Match reports whether a task with the given fields passes the filter. All
// text words must appear in the title or description.
func (q FilterQuery) Match(id int64, status, title, description string) bool {
	if len(q.Status) > 0 && !containsString(q.Status, strings.ToLower(status)) {
		return false
	}
	if len(q.IDs) > 0 {
		found := false
		for _, want := range q.IDs {
			if want == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	haystack := strings.ToLower(title + " " + description)
	for _, w := range q.Text {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
