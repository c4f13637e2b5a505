package utils

import "strconv"

func ConvertStringToInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

// Transfer pulls an int64 user id out of a decoded JWT payload value, which
// arrives as float64 from JSON.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}
