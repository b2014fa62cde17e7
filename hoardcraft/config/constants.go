package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Pagination
	CardsPerPage = 7

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Rarity Colors
	RarityCommonColor    = 0x95A5A6 // Greyple
	RarityUncommonColor  = 0x2ECC71 // Green
	RarityRareColor      = 0x3498DB // Blue
	RarityEpicColor      = 0x9B59B6 // Purple
	RarityLegendaryColor = 0xE67E22 // Orange
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second

	// Cooldown denial cache
	CooldownCacheSize = 10000
)

// Economy Constants
const (
	// Draw rate limiting: at most MaxDrawsPerWindow draws per DrawWindow,
	// window anchored at the first draw in it.
	DrawWindow        = time.Hour
	MaxDrawsPerWindow = 5

	// Shop rotation period per server.
	ShopRotationPeriod = time.Hour
	ShopSize           = 3
)
