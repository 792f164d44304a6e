package shop

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

func (srm *ShopRoutesManager) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := srm.catalogService.GetCategories(r.Context())
	if err != nil {
		handling.RespondError(err, "Failed to load categories", srm.logger, w)
		return
	}

	views := make([]structs.CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, categoryView(&categories[i]))
	}

	gecho.Success(w,
		gecho.WithData(views),
		gecho.Send(),
	)
}
