package usecase

import (
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// DashboardUseCase arma las tarjetas del dashboard: conteos y sumas del mes.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los indicadores del usuario.
func (uc *DashboardUseCase) Summary(userID string) (*dto.DashboardResponse, error) {
	customers, err := uc.repo.CountCustomers(userID)
	if err != nil {
		return nil, err
	}
	products, err := uc.repo.CountProducts(userID)
	if err != nil {
		return nil, err
	}
	stockOnHand, err := uc.repo.SumStockOnHand(userID)
	if err != nil {
		return nil, err
	}
	monthSales, err := uc.repo.SumMonthSales(userID)
	if err != nil {
		return nil, err
	}
	openSales, err := uc.repo.CountOpenSales(userID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalCustomers: customers,
		TotalProducts:  products,
		StockOnHand:    stockOnHand,
		MonthSales:     monthSales,
		OpenSales:      openSales,
	}, nil
}
