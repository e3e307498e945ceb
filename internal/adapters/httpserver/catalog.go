package httpserver

import (
	"net/http"

	"github.com/orientwatch/backend/internal/domain"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	minPrice, err := queryFloat(r, "minPrice")
	if err != nil {
		writeError(w, err)
		return
	}
	maxPrice, err := queryFloat(r, "maxPrice")
	if err != nil {
		writeError(w, err)
		return
	}

	f := domain.ProductFilter{
		Search:     r.URL.Query().Get("search"),
		Collection: r.URL.Query().Get("collection"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Page:       page,
		Limit:      limit,
	}
	list, pg, err := s.products.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: toProductResponses(list), Pagination: pg})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// productPayload doubles as create body and partial-update patch: absent
// fields stay nil and are never applied.
type productPayload struct {
	Name          *string            `json:"name"`
	Collection    *string            `json:"collection"`
	Price         *float64           `json:"price"`
	Image         *string            `json:"image"`
	Images        *[]string          `json:"images"`
	Description   *string            `json:"description"`
	Features      *[]string          `json:"features"`
	Specs         *map[string]string `json:"specs"`
	InStock       *bool              `json:"inStock"`
	StockQuantity *int               `json:"stockQuantity"`
	SKU           *string            `json:"sku"`
}

func (pl *productPayload) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:          pl.Name,
		Collection:    pl.Collection,
		Price:         pl.Price,
		Image:         pl.Image,
		Images:        pl.Images,
		Description:   pl.Description,
		Features:      pl.Features,
		Specs:         pl.Specs,
		InStock:       pl.InStock,
		StockQuantity: pl.StockQuantity,
		SKU:           pl.SKU,
	}
}

func (pl *productPayload) toProduct() domain.Product {
	p := domain.Product{InStock: true}
	if pl.Name != nil {
		p.Name = *pl.Name
	}
	if pl.Collection != nil {
		p.Collection = *pl.Collection
	}
	if pl.Price != nil {
		p.Price = *pl.Price
	}
	if pl.Image != nil {
		p.Image = *pl.Image
	}
	if pl.Images != nil {
		p.Images = *pl.Images
	}
	if pl.Description != nil {
		p.Description = *pl.Description
	}
	if pl.Features != nil {
		p.Features = *pl.Features
	}
	if pl.Specs != nil {
		p.Specs = *pl.Specs
	}
	if pl.InStock != nil {
		p.InStock = *pl.InStock
	}
	if pl.StockQuantity != nil {
		p.StockQuantity = *pl.StockQuantity
	}
	if pl.SKU != nil {
		p.SKU = *pl.SKU
	}
	return p
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var pl productPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	p := pl.toProduct()
	if err := s.products.Create(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(&p))
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var pl productPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	p, err := s.products.Update(r.Context(), id, pl.toPatch())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.products.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Product deleted", "id": id})
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	list, err := s.collections.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]collectionResponse, 0, len(list))
	for i := range list {
		out = append(out, toCollectionResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	c, err := s.collections.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCollectionResponse(c))
}

func (s *Server) handleCollectionProducts(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, err)
		return
	}
	list, pg, err := s.collections.ListProducts(r.Context(), r.PathValue("id"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Data: toProductResponses(list), Pagination: pg})
}

type collectionPayload struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Number      *string `json:"number"`
	Active      *bool   `json:"active"`
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var pl collectionPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	c := domain.Collection{Active: true}
	if pl.ID != nil {
		c.ID = *pl.ID
	}
	if pl.Name != nil {
		c.Name = *pl.Name
	}
	if pl.Description != nil {
		c.Description = *pl.Description
	}
	if pl.Image != nil {
		c.Image = *pl.Image
	}
	if pl.Number != nil {
		c.Number = *pl.Number
	}
	if pl.Active != nil {
		c.Active = *pl.Active
	}
	if err := s.collections.Create(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Collection created", "id": c.ID})
}

func (s *Server) handleUpdateCollection(w http.ResponseWriter, r *http.Request) {
	var pl collectionPayload
	if err := decodeJSON(r, &pl); err != nil {
		writeError(w, err)
		return
	}
	patch := domain.CollectionPatch{
		Name:        pl.Name,
		Description: pl.Description,
		Image:       pl.Image,
		Number:      pl.Number,
		Active:      pl.Active,
	}
	if _, err := s.collections.Update(r.Context(), r.PathValue("id"), patch); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Collection updated"})
}

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := s.collections.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Collection deleted"})
}
