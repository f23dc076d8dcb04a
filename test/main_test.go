package test

import (
	"ShowFolio/config"
	"ShowFolio/internal/repo"
	"ShowFolio/internal/storage"
	"ShowFolio/utils"
	"log"
	"os"
	"testing"
)

// TestMain sets up the test environment against the test database and
// test bucket.
func TestMain(m *testing.M) {
	config.InitConfig()
	config.AppConfig.BucketName = config.AppConfig.BucketNameTest
	repo.InitMysqlTest()
	storage.InitMinio()
	repo.InitRedis()
	utils.InitCacheManager()

	cleanupAllTables()

	code := m.Run()
	os.Exit(code)
}

// cleanupAllTables wipes table data without dropping the schema.
func cleanupAllTables() {
	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 0")

	tables := []string{
		"cleanup_task",
		"project_skill_tags",
		"skill_tag",
		"project_link",
		"question_prompt",
		"media",
		"contributor",
		"project",
		"user_db",
	}
	for _, table := range tables {
		repo.Db.Exec("DELETE FROM " + table)
	}

	repo.Db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	log.Println("[testmain] all tables cleaned")
}
