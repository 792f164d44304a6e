package shop

import (
	"net/http"
	"petshop_server/handling"
	"petshop_server/structs"

	"github.com/MonkyMars/gecho"
)

// GetFrontPage assembles the landing page: the best sellers and a randomly
// chosen category with a shuffled sample of its products.
func (srm *ShopRoutesManager) GetFrontPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := srm.cfg.Shop.FrontPageLimit

	bestSellers, err := srm.catalogService.GetBestSellers(ctx, limit)
	if err != nil {
		handling.RespondError(err, "Failed to load the front page", srm.logger, w)
		return
	}

	category, picks, err := srm.catalogService.GetRandomCategory(ctx, limit)
	if err != nil {
		handling.RespondError(err, "Failed to load the front page", srm.logger, w)
		return
	}

	subcategory, subPicks, err := srm.catalogService.GetRandomSubcategory(ctx, limit)
	if err != nil {
		handling.RespondError(err, "Failed to load the front page", srm.logger, w)
		return
	}

	page := structs.FrontPage{
		BestSellers:      bestSellers,
		RandomPicks:      productViews(picks),
		SubcategoryPicks: productViews(subPicks),
	}
	if category != nil {
		view := categoryView(category)
		page.RandomCategory = &view
	}
	if subcategory != nil {
		page.RandomSubcategory = &structs.SubcategoryView{
			ID:   subcategory.Id,
			Name: subcategory.Name,
		}
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}
