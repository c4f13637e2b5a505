package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/vidloom/vidloom/cmd/model"
	"github.com/vidloom/vidloom/pkg/utils"
)

var DB *gorm.DB

func Init() {
	var err error
	DB, err = gorm.Open(mysql.Open(utils.GetMysqlDsn()),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.AutoMigrate(&model.Subscription{}, &model.Subscriber{}); err != nil {
		panic(err)
	}
}
