package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rehiy/sms-text/models"
)

// CreateConversion 保存转换记录
func CreateConversion(c *models.Conversion) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	err := db.Create(c).Error
	if err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}
	return nil
}

// DeleteConversion 根据ID删除转换记录
func DeleteConversion(id int) error {
	ret := db.Delete(&models.Conversion{}, id)
	if ret.Error != nil {
		return fmt.Errorf("failed to delete conversion: %w", ret.Error)
	}
	if ret.RowsAffected == 0 {
		return fmt.Errorf("conversion not found")
	}
	return nil
}

// BatchDeleteConversions 批量删除转换记录
func BatchDeleteConversions(ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ret := db.Where("id IN ?", ids).Delete(&models.Conversion{})
	if ret.Error != nil {
		return 0, fmt.Errorf("failed to batch delete conversions: %w", ret.Error)
	}
	return int(ret.RowsAffected), nil
}

// GetConversionList 查询转换记录列表
func GetConversionList(filter *models.ConversionFilter) ([]models.Conversion, int, error) {
	query := db.Model(&models.Conversion{})

	if filter.Direction != "" {
		query = query.Where("direction = ?", filter.Direction)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Failed != nil {
		if *filter.Failed {
			query = query.Where("error <> ''")
		} else {
			query = query.Where("error = ''")
		}
	}
	if !filter.StartTime.IsZero() {
		query = query.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query = query.Where("created_at <= ?", filter.EndTime)
	}

	// 查询总数
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count conversions: %w", err)
	}

	// 查询列表
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	var list []models.Conversion
	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(filter.Offset).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query conversions: %w", err)
	}

	return list, int(total), nil
}
