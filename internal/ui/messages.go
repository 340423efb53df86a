package ui

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	UsageAddWord = "Cách dùng: /addword từ_cấm"
	UsageDelWord = "Cách dùng: /delword từ_cấm"
	UsageSetMute = "Cách dùng: /setmute số_phút (vd: /setmute 30)"
	UsageUnmute  = "Hãy reply vào tin nhắn của người cần gỡ cấm rồi gửi /unmute."

	InvalidMinutes = "Số phút không hợp lệ."
	WordListEmpty  = "Danh sách từ cấm đang trống."
	UnmuteDone     = "✅ Đã gỡ cấm chat."
)

func StartMessage() string {
	return "👋 Bot cấm chat theo từ cấm đã sẵn sàng.\n" +
		"Admin dùng /addword, /delword, /listwords, /setmute, /unmute, /status."
}

func WordAdded(word string) string {
	return fmt.Sprintf("✅ Đã thêm từ cấm: “%s”", word)
}

func WordExists(word string) string {
	return fmt.Sprintf("“%s” đã có trong danh sách.", word)
}

func WordRemoved(word string) string {
	return fmt.Sprintf("🗑️ Đã xoá: “%s”", word)
}

func WordNotFound(word string) string {
	return fmt.Sprintf("Không tìm thấy: “%s”", word)
}

func WordList(words []string) string {
	items := make([]string, 0, len(words))
	for _, word := range words {
		items = append(items, "• "+word)
	}
	return "📄 Danh sách từ cấm:\n" + strings.Join(items, "\n")
}

func MuteDurationSet(minutes int) string {
	return fmt.Sprintf("⏱️ Thời gian cấm chat: %d phút.", minutes)
}

func UnmuteFailed(err error) string {
	return fmt.Sprintf("Không gỡ được hạn chế: %v", err)
}

func StatusMessage(minutes, wordCount int) string {
	return fmt.Sprintf("⚙️ Cấu hình:\n- Thời gian cấm: %d phút\n- Số từ cấm: %d", minutes, wordCount)
}

func ViolationNotice(mention string, minutes int, keyword string) string {
	return fmt.Sprintf("⚠️ @%s đã bị cấm chat %d phút vì dùng từ cấm: “%s”.", mention, minutes, keyword)
}

// Mention falls back to the numeric id for users without a username.
func Mention(username string, userID int64) string {
	if strings.TrimSpace(username) != "" {
		return username
	}
	return strconv.FormatInt(userID, 10)
}
