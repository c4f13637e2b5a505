package utils

import (
	"strings"

	"github.com/vidloom/vidloom/config"
)

func GetMysqlDsn() string {
	charset := config.ConfigInfo.Mysql.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	dsn := strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + charset + "&parseTime=True&loc=Local"}, "")
	return dsn
}

func GetRabbitMqURL() string {
	return strings.Join([]string{"amqp://", config.ConfigInfo.RabbitMq.Username, ":",
		config.ConfigInfo.RabbitMq.Password, "@", config.ConfigInfo.RabbitMq.Addr, "/"}, "")
}
