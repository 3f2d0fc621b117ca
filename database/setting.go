package database

import (
	"fmt"
	"strconv"

	"github.com/rehiy/sms-text/models"
	"github.com/rehiy/sms-text/pdutext"
)

const (
	keyHistoryEnabled = "history_enabled"
	keyDefaultOffset  = "default_offset"
)

// GetSettings 获取所有设置
func GetSettings() (map[string]string, error) {
	var settings []models.Setting
	if err := db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	result := make(map[string]string)
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}

	return result, nil
}

// setSetting 写入或更新单个设置
func setSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := db.Where(models.Setting{Key: key}).Assign(setting).FirstOrCreate(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// getSetting 读取单个设置
func getSetting(key string) (string, bool) {
	var setting models.Setting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		return "", false
	}
	return setting.Value, true
}

// IsHistoryEnabled 检查转换记录是否启用
func IsHistoryEnabled() bool {
	value, ok := getSetting(keyHistoryEnabled)
	return ok && value == "true"
}

// SetHistoryEnabled 设置转换记录启用状态
func SetHistoryEnabled(enabled bool) error {
	return setSetting(keyHistoryEnabled, strconv.FormatBool(enabled))
}

// GetDefaultOffset 获取默认 7bit 对齐偏移
func GetDefaultOffset() uint8 {
	value, ok := getSetting(keyDefaultOffset)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(value, 10, 8)
	if err != nil || n > pdutext.MaxOffset {
		return 0
	}
	return uint8(n)
}

// SetDefaultOffset 设置默认 7bit 对齐偏移
func SetDefaultOffset(offset uint8) error {
	if offset > pdutext.MaxOffset {
		return fmt.Errorf("offset %d out of range", offset)
	}
	return setSetting(keyDefaultOffset, strconv.Itoa(int(offset)))
}

// InitDefaultSettings 初始化默认设置
func InitDefaultSettings() error {
	defaultSettings := map[string]string{
		keyHistoryEnabled: "true",
		keyDefaultOffset:  "0",
	}

	for key, value := range defaultSettings {
		setting := models.Setting{Key: key, Value: value}
		result := db.FirstOrCreate(&setting, models.Setting{Key: key})
		if result.Error != nil {
			return fmt.Errorf("failed to insert default setting: %w", result.Error)
		}
	}

	return nil
}
