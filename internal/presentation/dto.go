package presentation

import (
	"github.com/zjrosen/storybook/internal/story"
)

// StoryDTO summarizes a story for the stories command.
type StoryDTO struct {
	Name    string `json:"name" yaml:"name"`
	Title   string `json:"title" yaml:"title"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Start   int    `json:"start" yaml:"start"`
	Pages   int    `json:"pages" yaml:"pages"`
	Endings []int  `json:"endings" yaml:"endings"`
}

// IssueDTO is one authoring problem reported by the check command.
type IssueDTO struct {
	Kind    string `json:"kind" yaml:"kind"`
	Page    int    `json:"page" yaml:"page"`
	Message string `json:"message" yaml:"message"`
}

// FromBook summarizes book under name.
func FromBook(name string, book *story.Book) StoryDTO {
	endings := book.Endings()
	if endings == nil {
		endings = []int{}
	}
	return StoryDTO{
		Name:    name,
		Title:   book.Title,
		Author:  book.Author,
		Start:   book.Start,
		Pages:   len(book.Pages),
		Endings: endings,
	}
}

// FromIssues converts lint results, keeping their order.
func FromIssues(issues []story.Issue) []IssueDTO {
	out := make([]IssueDTO, 0, len(issues))
	for _, i := range issues {
		out = append(out, IssueDTO{Kind: string(i.Kind), Page: i.Page, Message: i.Msg})
	}
	return out
}
