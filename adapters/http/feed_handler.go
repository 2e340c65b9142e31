package http

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"

	feedUC "github.com/princepatel/folio/internal/application/usecase/feed"
)

type FeedHandler struct {
	sitemapUseCase *feedUC.SitemapUseCase
	rssUseCase     *feedUC.RSSUseCase
}

func NewFeedHandler(sitemapUC *feedUC.SitemapUseCase, rssUC *feedUC.RSSUseCase) *FeedHandler {
	return &FeedHandler{
		sitemapUseCase: sitemapUC,
		rssUseCase:     rssUC,
	}
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *FeedHandler) GetSitemap(c *gin.Context) {
	entries, err := h.sitemapUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, len(entries)),
	}
	for i, entry := range entries {
		urlSet.URLs[i] = sitemapURL{
			Loc:        entry.URL,
			LastMod:    entry.LastModified.Format("2006-01-02"),
			ChangeFreq: entry.ChangeFrequency,
			Priority:   entry.Priority,
		}
	}

	c.XML(http.StatusOK, urlSet)
}

func (h *FeedHandler) GetRSS(c *gin.Context) {
	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	rss, err := feed.ToRss()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
