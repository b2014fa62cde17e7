package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/hoardcraft/bot/hoardcraft/config"
	"github.com/hoardcraft/bot/hoardcraft/database/models"
)

// FormatCardName converts names like "molten_giant" to "Molten Giant"
func FormatCardName(name string) string {
	if name == "" {
		return ""
	}

	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// FormatCollectionName renders a collection id as a bracketed tag
func FormatCollectionName(colName string) string {
	if colName == "" {
		return ""
	}
	return "[" + strings.ToUpper(colName) + "]"
}

// RarityLabel returns the display label for a rarity tier
func RarityLabel(r models.Rarity) string {
	switch r {
	case models.RarityLegendary:
		return "`★ Legendary`"
	case models.RarityEpic:
		return "`◆ Epic`"
	case models.RarityRare:
		return "`● Rare`"
	case models.RarityUncommon:
		return "`○ Uncommon`"
	case models.RarityCommon:
		return "`· Common`"
	default:
		return "`" + string(r) + "`"
	}
}

// RarityColor returns the embed color for a rarity tier
func RarityColor(r models.Rarity) int {
	switch r {
	case models.RarityLegendary:
		return config.RarityLegendaryColor
	case models.RarityEpic:
		return config.RarityEpicColor
	case models.RarityRare:
		return config.RarityRareColor
	case models.RarityUncommon:
		return config.RarityUncommonColor
	case models.RarityCommon:
		return config.RarityCommonColor
	default:
		return config.InfoColor
	}
}

// FormatCardEntry formats a single owned-card line for list embeds
func FormatCardEntry(card *models.Card) string {
	colName := ""
	if card.Collection != nil {
		colName = strings.Trim(FormatCollectionName(card.Collection.Name), "[]")
	}
	return fmt.Sprintf("* %s %s `[%s]`",
		RarityLabel(card.Rarity),
		FormatCardName(card.Name),
		colName,
	)
}

// FormatDuration renders a duration as "1h 23m 45s", dropping zero components
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh ", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%dm ", m)
	}
	if s > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return strings.TrimSpace(b.String())
}

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}
