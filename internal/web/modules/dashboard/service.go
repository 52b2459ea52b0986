package dashboard

import (
	"context"
	"strconv"

	"github.com/ph1234-dev/acme-dashboard/internal/invoices/storage"
	apperrors "github.com/ph1234-dev/acme-dashboard/internal/web/platform/errors"
	webtemplates "github.com/ph1234-dev/acme-dashboard/internal/web/templates"
)

// OverviewGateway reads aggregate card data.
type OverviewGateway interface {
	GetOverview(ctx context.Context) (storage.Overview, error)
}

// CustomerGateway reads customers for the customers page.
type CustomerGateway interface {
	ListCustomers(ctx context.Context) ([]storage.Customer, error)
}

type service struct {
	overview  OverviewGateway
	customers CustomerGateway
}

type unavailableOverviewGateway struct{}

type unavailableCustomerGateway struct{}

func gatewayUnavailable() error {
	return apperrors.E(apperrors.KindUnavailable, "dashboard storage is not configured")
}

func (unavailableOverviewGateway) GetOverview(context.Context) (storage.Overview, error) {
	return storage.Overview{}, gatewayUnavailable()
}

func (unavailableCustomerGateway) ListCustomers(context.Context) ([]storage.Customer, error) {
	return nil, gatewayUnavailable()
}

func newService(overview OverviewGateway, customers CustomerGateway) service {
	if overview == nil {
		overview = unavailableOverviewGateway{}
	}
	if customers == nil {
		customers = unavailableCustomerGateway{}
	}
	return service{overview: overview, customers: customers}
}

func (s service) overviewView(ctx context.Context) (webtemplates.OverviewView, error) {
	overview, err := s.overview.GetOverview(ctx)
	if err != nil {
		return webtemplates.OverviewView{}, err
	}
	return webtemplates.OverviewView{
		Collected: webtemplates.FormatCents(overview.PaidCents),
		Pending:   webtemplates.FormatCents(overview.PendingCents),
		Invoices:  strconv.FormatInt(overview.InvoiceCount, 10),
		Customers: strconv.FormatInt(overview.CustomerCount, 10),
	}, nil
}

func (s service) customerRows(ctx context.Context) ([]webtemplates.CustomerRowView, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]webtemplates.CustomerRowView, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, webtemplates.CustomerRowView{
			Name:     customer.Name,
			Email:    customer.Email,
			ImageURL: customer.ImageURL,
		})
	}
	return rows, nil
}
