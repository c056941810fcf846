package services

import (
	"encoding/json"
	"strings"
	"time"

	"casaboard/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken lấy userID và role từ token, đồng thời kiểm tra hạn.
// Việc xác thực chữ ký thuộc về kho dữ liệu; gateway chỉ đọc claims để biết
// phiên thuộc về ai và còn hiệu lực không.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", err)
	}

	// Token hết hạn thì báo riêng để UI yêu cầu đăng nhập lại
	if exp, ok := claimsMap["exp"].(float64); ok {
		if time.Now().Unix() >= int64(exp) {
			return 0, 0, errors.NewAppError(errors.ErrCodeExpiredToken, "Session expired. Please sign in again.", nil)
		}
	}

	// Trích xuất userID và role từ claims
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid session token.", nil)
	}

	return uint(userID), int(role), nil
}
