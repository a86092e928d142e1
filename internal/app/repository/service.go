package repository

import (
	"pos-backend/internal/app/ds"
)

// Методы для работы с услугами

func (r *Repository) GetServices() ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.Order("id_service").Find(&services).Error
	return services, err
}

// ServiceAvailabilityRow — услуга с признаком доступности по остаткам
type ServiceAvailabilityRow struct {
	ID           uint
	Name         string
	Availability string
}

// GetServicesWithAvailability возвращает услуги и доступность каждой:
// "No", если хотя бы один товар из состава услуги закончился на складе.
func (r *Repository) GetServicesWithAvailability() ([]ServiceAvailabilityRow, error) {
	query := `
		SELECT
			s.id_service,
			s.name_service,
			CASE
				WHEN SUM(CASE WHEN p.quantity_product = 0 THEN 1 ELSE 0 END) > 0 THEN 'No'
				ELSE 'Yes'
			END AS availability
		FROM services s
		LEFT JOIN service_products sp ON s.id_service = sp.service_id
		LEFT JOIN products p ON sp.product_id = p.id_product
		GROUP BY s.id_service, s.name_service
		ORDER BY s.id_service`

	rows, err := r.db.Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceAvailabilityRow
	for rows.Next() {
		var row ServiceAvailabilityRow
		if err = rows.Scan(&row.ID, &row.Name, &row.Availability); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
