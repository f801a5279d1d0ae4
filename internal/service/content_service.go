package service

import (
	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"
)

type ContentService struct{}

func NewContentService() *ContentService {
	return &ContentService{}
}

// Menu returns the course navigation tree.
func (s *ContentService) Menu() []model.ContentTopic {
	return model.ContentMenu
}

// Section resolves the page body for a sub-topic under a level. Titles
// without registered content still resolve; the page renders the title
// as a bare heading, as the course has always done for stub sections.
func (s *ContentService) Section(level model.Level, title string) (*model.ContentSection, error) {
	known := false
	for _, topic := range model.ContentMenu {
		if topic.Level == level {
			known = true
			break
		}
	}
	if !known {
		return nil, util.ErrTopicNotFound
	}
	return &model.ContentSection{
		Title:  title,
		Blocks: model.LookupContent(level, title),
	}, nil
}
