package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type BillController struct {
	bills *service.BillService
}

func NewBillController(bills *service.BillService) *BillController {
	return &BillController{bills: bills}
}

func (c *BillController) Get(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	bill, err := c.bills.Get(ctx, mux.Vars(r)["sessionId"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": bill})
}
