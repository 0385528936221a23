package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"ContactBook/internal/model"
	"ContactBook/storage/database"
)

// RunGenerate 生成类型安全的查询代码，由 cmd/gen 调用。
// 生成结果是构建产物，不入库。
func RunGenerate() {
	if err := database.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect database: %v\n", err)
		os.Exit(1)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "internal/repository/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.UseDB(database.DB())

	g.ApplyBasic(model.User{}, model.Contact{})
	g.ApplyInterface(func(ContactQuerier) {}, model.Contact{})

	g.Execute()
}
