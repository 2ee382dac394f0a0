package services

import "semantic_router_site/internal/models"

var sitePublications = []models.PublicationRecord{
	{
		ID:       1,
		Title:    "When to Reason: Semantic Router for vLLM",
		Authors:  "Chen Wang, Xunzhuo Liu, Yuhan Liu, Yue Zhu, Xiangxi Mo, Junchen Jiang, Huamin Chen",
		Venue:    "NeurIPS - MLForSys",
		Year:     "2025",
		Abstract: "We propose vLLM semantic router integrated with vLLM that selectively applies reasoning only when beneficial, achieving over 10 percentage point accuracy gains while nearly halving latency and token usage",
		Links: []models.LinkRecord{
			{Type: models.LinkTypePaper, URL: "https://mlforsystems.org", Label: "📄 Paper"},
		},
		Featured: true,
	},
}
