package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShopAddress          string
	DeliveryRadiusMeters int

	PendingPaymentTimeout time.Duration
	StaleDeliveryAge      time.Duration
	MenuCacheTTL          time.Duration

	BaiduAPIURL string
	BaiduAPIKey string

	WechatAPIURL     string
	WechatMerchantID string
	WechatAPIKey     string
}
