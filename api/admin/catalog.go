package admin

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/lib"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (adm *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the category fields", adm.logger, w)
		return
	}

	category, err := adm.catalogService.CreateCategory(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Failed to create the category", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the category fields", adm.logger, w)
		return
	}

	if err := adm.catalogService.UpdateCategory(r.Context(), id, body); err != nil {
		handling.RespondError(err, "Failed to update the category", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid category id"), gecho.Send())
		return
	}

	if err := adm.catalogService.DeleteCategory(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the category", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SubcategoryRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the subcategory fields", adm.logger, w)
		return
	}

	subcategory, err := adm.catalogService.CreateSubcategory(r.Context(), body)
	if err != nil {
		handling.RespondError(err, "Failed to create the subcategory", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Subcategory created"),
		gecho.WithData(subcategory),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid subcategory id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SubcategoryRequest](r)
	if err != nil {
		handling.RespondError(err, "Please check the subcategory fields", adm.logger, w)
		return
	}

	if err := adm.catalogService.UpdateSubcategory(r.Context(), id, body); err != nil {
		handling.RespondError(err, "Failed to update the subcategory", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Subcategory updated"),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid subcategory id"), gecho.Send())
		return
	}

	if err := adm.catalogService.DeleteSubcategory(r.Context(), id); err != nil {
		handling.RespondError(err, "Failed to delete the subcategory", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Subcategory deleted"),
		gecho.Send(),
	)
}
