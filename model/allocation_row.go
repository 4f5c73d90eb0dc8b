package model

import "time"

// AllocationRow imported allocation record (MySQL)
type AllocationRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountId string    `gorm:"uniqueIndex;type:varchar(128);not null" json:"account_id"` // lower-case canonical id
	Total     int64     `gorm:"not null;default:0" json:"total"`
	Campaigns string    `gorm:"type:text" json:"campaigns"` // JSON([]CampaignEntry)
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (AllocationRow) TableName() string {
	return "tb_airdrop_allocation"
}

// AddressAliasRow imported EVM address alias (MySQL)
type AddressAliasRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Address   string    `gorm:"uniqueIndex;type:varchar(64);not null" json:"address"` // lower-case 0x address
	AccountId string    `gorm:"index;type:varchar(128);not null" json:"account_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (AddressAliasRow) TableName() string {
	return "tb_address_alias"
}
