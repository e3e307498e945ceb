package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/orientwatch/backend/internal/domain"
)

func (s *Server) handleGetHero(w http.ResponseWriter, r *http.Request) {
	h, err := s.content.Hero(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":    h.Title,
		"subtitle": h.Subtitle,
		"image":    h.Image,
		"ctaText":  h.CtaText,
		"ctaLink":  h.CtaLink,
	})
}

func (s *Server) handleUpdateHero(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
		Image    string `json:"image"`
		CtaText  string `json:"ctaText"`
		CtaLink  string `json:"ctaLink"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h := domain.HeroContent{Title: req.Title, Subtitle: req.Subtitle, Image: req.Image, CtaText: req.CtaText, CtaLink: req.CtaLink}
	if err := s.content.UpdateHero(r.Context(), &h); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hero content updated"})
}

func (s *Server) handleGetPromoBanner(w http.ResponseWriter, r *http.Request) {
	b, err := s.content.PromoBanner(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"text":            b.Text,
		"code":            b.Code,
		"active":          b.Active,
		"backgroundColor": b.BackgroundColor,
		"textColor":       b.TextColor,
		"highlightColor":  b.HighlightColor,
	})
}

func (s *Server) handleUpdatePromoBanner(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text            string `json:"text"`
		Code            string `json:"code"`
		Active          bool   `json:"active"`
		BackgroundColor string `json:"backgroundColor"`
		TextColor       string `json:"textColor"`
		HighlightColor  string `json:"highlightColor"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	b := domain.PromoBanner{
		Text:            req.Text,
		Code:            req.Code,
		Active:          req.Active,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		HighlightColor:  req.HighlightColor,
	}
	if err := s.content.UpdatePromoBanner(r.Context(), &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Promo banner updated"})
}

func (s *Server) handleGetHeritage(w http.ResponseWriter, r *http.Request) {
	h, err := s.content.Heritage(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":       h.Title,
		"subtitle":    h.Subtitle,
		"description": h.Description,
		"ctaText":     h.CtaText,
		"ctaLink":     h.CtaLink,
		"yearsText":   h.YearsText,
	})
}

func (s *Server) handleUpdateHeritage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Description string `json:"description"`
		CtaText     string `json:"ctaText"`
		CtaLink     string `json:"ctaLink"`
		YearsText   string `json:"yearsText"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	h := domain.HeritageSection{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		CtaText:     req.CtaText,
		CtaLink:     req.CtaLink,
		YearsText:   req.YearsText,
	}
	if err := s.content.UpdateHeritage(r.Context(), &h); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Heritage section updated"})
}

func (s *Server) handleGetFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.FeaturedWatches(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeaturedResponses(items))
}

func (s *Server) handleReplaceFeatured(w http.ResponseWriter, r *http.Request) {
	var req []struct {
		ProductID string `json:"productId"`
		Order     int    `json:"order"`
		IsNew     bool   `json:"isNew"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	set := make([]domain.FeaturedWatch, 0, len(req))
	for _, it := range req {
		pid, err := strconv.ParseUint(it.ProductID, 10, 64)
		if err != nil {
			writeError(w, fmt.Errorf("%w: bad productId %q", domain.ErrInvalidInput, it.ProductID))
			return
		}
		set = append(set, domain.FeaturedWatch{ProductID: uint(pid), Position: it.Order, IsNew: it.IsNew})
	}
	if err := s.content.ReplaceFeaturedWatches(r.Context(), set); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Featured watches updated"})
}
