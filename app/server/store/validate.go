package store

import (
	"class-website/app/server/constants"
	"class-website/app/server/types"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ConfessionMessage 校验并返回去除首尾空白后的留言
func ConfessionMessage(message string) (string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "", invalid("Message is required")
	}
	if utf8.RuneCountInString(message) > constants.ConfessionMaxLength {
		return "", invalid(fmt.Sprintf("Message too long (max %d characters)", constants.ConfessionMaxLength))
	}
	return trimmed, nil
}

func ValidateStructureMember(member *types.StructureMember) error {
	if strings.TrimSpace(member.Position) == "" {
		return invalid("Position is required")
	}
	if strings.TrimSpace(member.Name) == "" {
		return invalid("Name is required")
	}
	return nil
}

func ValidateGalleryItem(item *types.GalleryItem) error {
	if strings.TrimSpace(item.Filename) == "" {
		return invalid("Filename is required")
	}
	return nil
}

// ValidateGalleryBatch 每个文件只能对应一条记录，批量内部也不能重复
func ValidateGalleryBatch(items []*types.GalleryItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := ValidateGalleryItem(item); err != nil {
			return err
		}
		if _, dup := seen[item.Filename]; dup {
			return FilenameTaken(item.Filename)
		}
		seen[item.Filename] = struct{}{}
	}
	return nil
}

func FilenameTaken(filename string) error {
	return invalid(fmt.Sprintf("File %s is already used by another photo", filename))
}

// NextStamp 返回严格晚于 prev 的当前时间（微秒精度，和 postgres 保持一致）
func NextStamp(prev time.Time) time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
