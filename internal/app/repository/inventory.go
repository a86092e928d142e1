package repository

import (
	"fmt"

	"pos-backend/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Списание остатков по услуге. Выполняется строго внутри транзакционного
// скоупа вызывающего, чтобы откатываться вместе со всей операцией.
//
// Услуга разрешается по названию (естественный ключ исходной схемы):
//   - ни одной услуги с таким именем — позиция пропускается без списания,
//     как в исходной системе;
//   - несколько услуг с таким именем — ErrServiceNameConflict, произвольный
//     выбор здесь недопустим.
func decrementInventory(tx *gorm.DB, serviceName string, quantity int) error {
	var serviceCount int64
	err := tx.Model(&ds.Service{}).Where("name_service = ?", serviceName).Count(&serviceCount).Error
	if err != nil {
		return fmt.Errorf("не удалось найти услугу %q: %w", serviceName, err)
	}

	if serviceCount == 0 {
		logrus.Warnf("услуга %q не найдена, списание по позиции пропущено", serviceName)
		return nil
	}
	if serviceCount > 1 {
		return fmt.Errorf("%w: %q", ErrServiceNameConflict, serviceName)
	}

	// Сколько различных товаров входит в состав услуги. DISTINCT обязателен:
	// задублированная пара (service_id, product_id) в составе не должна
	// завышать счетчик относительно числа реально обновляемых строк.
	var productCount int64
	err = tx.Model(&ds.ServiceProduct{}).
		Distinct("product_id").
		Where("service_id = (SELECT id_service FROM services WHERE name_service = ?)", serviceName).
		Count(&productCount).Error
	if err != nil {
		return fmt.Errorf("не удалось получить состав услуги %q: %w", serviceName, err)
	}

	if productCount == 0 {
		// Услуга без товаров в составе, списывать нечего
		return nil
	}

	// Атомарное списание одним оператором: декремент выражен в самом UPDATE,
	// поэтому конкурентные списания не теряют обновлений. Условие
	// quantity_product >= ? не даёт остатку уйти в минус.
	result := tx.Exec(`
		UPDATE products
		SET quantity_product = quantity_product - ?
		WHERE id_product IN (
			SELECT product_id FROM service_products WHERE service_id = (
				SELECT id_service FROM services WHERE name_service = ?
			)
		) AND quantity_product >= ?`, quantity, serviceName, quantity)
	if result.Error != nil {
		return fmt.Errorf("не удалось списать остатки по услуге %q: %w", serviceName, result.Error)
	}

	if result.RowsAffected < productCount {
		return fmt.Errorf("%w: услуга %q, требуется %d", ErrInsufficientInventory, serviceName, quantity)
	}

	return nil
}
