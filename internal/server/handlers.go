package server

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/czmj/ambridge/internal/archive"
	"github.com/czmj/ambridge/internal/common"
)

func (s *Server) timelineParams(c *gin.Context) archive.TimelineParams {
	params := archive.TimelineParams{
		PageSize: s.Config.Archive.PageSize,
		Sort:     archive.SortOrder(c.Query("sort")),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	return params
}

func (s *Server) Timeline(c *gin.Context) {
	result, err := s.Archive.GetTimeline(c.Request.Context(), s.timelineParams(c))
	if err != nil {
		log.Printf("Failed to fetch timeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeline"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Character(c *gin.Context) {
	slug := common.Slugify(c.Param("slug"))

	profile, err := s.Archive.GetCharacterProfile(c.Request.Context(), slug)
	if err != nil {
		log.Printf("Failed to fetch character %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch character"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Character not found"})
		return
	}

	params := s.timelineParams(c)
	params.Slug = slug
	timeline, err := s.Archive.GetTimeline(c.Request.Context(), params)
	if err != nil {
		log.Printf("Failed to fetch timeline for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch timeline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":    profile,
		"episodes":   timeline.Episodes,
		"totalCount": timeline.TotalCount,
	})
}

func (s *Server) Family(c *gin.Context) {
	slug := common.Slugify(c.Param("slug"))

	tree, err := s.Archive.GetFamilyTree(c.Request.Context(), slug)
	if err != nil {
		log.Printf("Failed to fetch family tree for %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch family tree"})
		return
	}
	if tree == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No family data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"focus": slug, "nodes": tree})
}

func (s *Server) Episode(c *gin.Context) {
	date := c.Param("date")
	if _, err := common.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	episode, err := s.Archive.GetEpisodeByDate(c.Request.Context(), date)
	if err != nil {
		log.Printf("Failed to fetch episode for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch episode"})
		return
	}
	if episode == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No episode on that date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"episode":     episode,
		"dateDisplay": common.FormatDate(episode.Date),
		"listenAgain": common.ListenAgain(episode.PID, episode.Date, time.Now()),
	})
}
