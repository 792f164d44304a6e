package shop

import (
	"net/http"
	"petshop_server/handling"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *ShopRoutesManager) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	products, err := srm.productService.GetProductsByCategory(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load products", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(productViews(products)),
		gecho.Send(),
	)
}

func (srm *ShopRoutesManager) GetProductsBySubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid subcategory id"), gecho.Send())
		return
	}

	products, err := srm.productService.GetProductsBySubcategory(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load products", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(productViews(products)),
		gecho.Send(),
	)
}

// GetDescriptions feeds the search box autocomplete.
func (srm *ShopRoutesManager) GetDescriptions(w http.ResponseWriter, r *http.Request) {
	descriptions, err := srm.catalogService.GetProductDescriptions(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load product names", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(descriptions),
		gecho.Send(),
	)
}

// SearchProducts matches the query against product descriptions,
// case-insensitive, anywhere in the text.
func (srm *ShopRoutesManager) SearchProducts(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("query"))
	if term == "" {
		gecho.BadRequest(w, gecho.WithMessage("Search term is required"), gecho.Send())
		return
	}

	limit, offset := handling.ParsePagination(r, srm.cfg.Shop.FrontPageLimit)

	products, err := srm.productService.SearchProducts(r.Context(), term, limit, offset)
	if err != nil {
		handling.RespondError(err, "Search failed", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(productViews(products)),
		gecho.Send(),
	)
}

func (srm *ShopRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	product, err := srm.productService.GetProductById(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load product", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(productView(product)),
		gecho.Send(),
	)
}

// GetProductImage serves the stored image bytes directly; the storefront
// embeds this URL in img tags.
func (srm *ShopRoutesManager) GetProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	image, err := srm.productService.GetProductImage(r.Context(), id)
	if err != nil {
		handling.RespondError(err, "Failed to load product image", srm.logger, w)
		return
	}
	if len(image) == 0 {
		gecho.NotFound(w, gecho.WithMessage("This product has no image"), gecho.Send())
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		srm.logger.Warn("Failed to write image response", gecho.Field("product_id", id), gecho.Field("error", err))
	}
}
