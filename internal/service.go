package internal

import (
	"context"

	"go.uber.org/zap"

	"github.com/sistemas-sl/sapbridge/internal/model"
)

const (
	documentComments = "Orden de prueba de pedido API"
	warehouseCode    = "BOPL"
)

// salesOrigins is the closed mapping between the order-entry labels and the
// SAP U_SL_ORI_VTA codes. Case-sensitive, no fallback: SAP rejects codes it
// does not know, better to fail before the round trip.
var salesOrigins = map[string]string{
	"Call center":   "1",
	"Cliente":       "2",
	"eCommerce":     "3",
	"Farmareds":     "4",
	"Transferencia": "5",
	"Vendedor":      "6",
}

type IService interface {
	SubmitOrder(ctx context.Context, orderID int) (int, string, error)
	SubmitPendingOrders(ctx context.Context) ([]model.SubmittedOrder, []model.FailedOrder, error)
}

type Service struct {
	repo   IRepository
	sap    ISap
	logger *zap.SugaredLogger

	docDate    string
	docDueDate string
}

func NewService(repo IRepository, sap ISap, docDate, docDueDate string, logger *zap.SugaredLogger) *Service {
	return &Service{repo: repo, sap: sap, docDate: docDate, docDueDate: docDueDate, logger: logger}
}

// SubmitOrder pushes one order to SAP: fetch, build the sales document,
// submit, then flag the order as inserted. A failed flag update is logged
// and swallowed: SAP already accepted the document, reporting the order as
// failed would be a lie. Every other error propagates unchanged.
func (s Service) SubmitOrder(ctx context.Context, orderID int) (int, string, error) {
	err := s.sap.EnsureSession(ctx)
	if err != nil {
		return 0, "", err
	}

	rows, err := s.repo.GetOrderRows(ctx, orderID)
	if err != nil {
		return 0, "", err
	}
	if len(rows) == 0 {
		return 0, "", ErrOrderNotFound
	}

	doc, err := s.buildDocument(rows)
	if err != nil {
		return 0, "", err
	}

	docNum, jsonData, err := s.sap.SubmitDocument(ctx, doc)
	if err != nil {
		return 0, "", err
	}

	if err = s.repo.MarkOrderInserted(ctx, orderID); err != nil {
		s.logger.Errorf("order %d accepted by SAP with DocNum %d, but setting insertado_sap = TRUE failed: %s", orderID, docNum, err.Error())
	}

	return docNum, jsonData, nil
}

// SubmitPendingOrders sweeps every pending order sequentially. One bad order
// lands in the failures list and the sweep moves on.
func (s Service) SubmitPendingOrders(ctx context.Context) ([]model.SubmittedOrder, []model.FailedOrder, error) {
	if err := s.sap.EnsureSession(ctx); err != nil {
		return nil, nil, err
	}

	ids, err := s.repo.GetPendingOrderIDs(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		successful []model.SubmittedOrder
		failed     []model.FailedOrder
	)
	for _, id := range ids {
		docNum, _, err := s.SubmitOrder(ctx, id)
		if err != nil {
			s.logger.Errorf("error sending order %d to SAP: %s", id, err.Error())
			failed = append(failed, model.FailedOrder{OrderID: id, Error: err.Error()})
			continue
		}

		s.logger.Infof("order %d sent to SAP with document number %d", id, docNum)
		successful = append(successful, model.SubmittedOrder{OrderID: id, DocNum: docNum})
	}

	return successful, failed, nil
}

func (s Service) buildDocument(rows []model.OrderRow) (model.SalesDocument, error) {
	head := rows[0]

	origin, ok := salesOrigins[head.SalesOrigin]
	if !ok {
		return model.SalesDocument{}, &UnknownOriginError{Origin: head.SalesOrigin}
	}

	doc := model.SalesDocument{
		CardCode:    head.CardCode,
		DocDate:     s.docDate,
		DocDueDate:  s.docDueDate,
		Comments:    documentComments,
		SalesOrigin: origin,
		OdooUser:    head.UserName,
	}
	if head.CreatedAt.Valid {
		doc.DocDate = head.CreatedAt.Time.Format("2006-01-02")
	}
	if head.OrderDate.Valid {
		doc.DocDueDate = head.OrderDate.Time.Format("2006-01-02")
	}

	for _, r := range rows {
		doc.DocumentLines = append(doc.DocumentLines, model.DocumentLine{
			ItemCode:        r.ItemCode,
			Quantity:        r.Quantity,
			UnitPrice:       r.UnitPrice,
			DiscountPercent: r.Discount,
			WarehouseCode:   warehouseCode,
			TaxCode:         r.TaxCode,
			QtyOrdered:      r.QtyOrdered,
			QtyBonus:        r.QtyBonus,
		})
	}

	return doc, nil
}
