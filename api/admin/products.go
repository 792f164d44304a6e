package admin

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func adminProductView(p *tables.Product) structs.ProductAdminView {
	view := structs.ProductAdminView{
		ProductView: structs.ProductView{
			ID:          p.Id,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Stock:       p.Stock,
			HasImage:    len(p.Image) > 0,
		},
		CostCents:     p.CostCents,
		SubcategoryID: p.SubcategoryId,
	}
	if p.Subcategory != nil {
		view.Subcategory = p.Subcategory.Name
		if p.Subcategory.Category != nil {
			view.Category = p.Subcategory.Category.Name
		}
	}
	return view
}

func (adm *AdminRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := handling.ParsePagination(r, 50)

	products, err := adm.productService.ListProducts(r.Context(), limit, offset)
	if err != nil {
		handling.RespondError(err, "Failed to load products", adm.logger, w)
		return
	}

	views := make([]structs.ProductAdminView, 0, len(products))
	for i := range products {
		views = append(views, adminProductView(&products[i]))
	}

	gecho.Success(w,
		gecho.WithData(views),
		gecho.Send(),
	)
}

// CreateProduct accepts a multipart form so the image rides along with the
// product fields.
func (adm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := handling.ParseProductForm(r, adm.cfg.Shop.MaxImageBytes)
	if err != nil {
		adm.logger.Warn("Invalid product form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}
	if err := lib.ValidateStruct(req); err != nil {
		handling.RespondError(err, "Please check the product fields", adm.logger, w)
		return
	}

	product, err := adm.productService.CreateProduct(r.Context(), req)
	if err != nil {
		handling.RespondError(err, "Failed to create the product", adm.logger, w)
		return
	}

	view := adminProductView(product)
	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(view),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	req, err := handling.ParseProductForm(r, adm.cfg.Shop.MaxImageBytes)
	if err != nil {
		adm.logger.Warn("Invalid product form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return
	}
	if err := lib.ValidateStruct(req); err != nil {
		handling.RespondError(err, "Please check the product fields", adm.logger, w)
		return
	}

	product, err := adm.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		handling.RespondError(err, "Failed to update the product", adm.logger, w)
		return
	}

	view := adminProductView(product)
	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(view),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	if err := adm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the product", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
