package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portal/internal/app/ds"
	"portal/internal/app/dsn"
	"portal/internal/app/role"
)

func main() {
	seed := flag.Bool("seed", false, "заполнить базу тестовыми данными после миграции")
	flag.Parse()

	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Category{},
		&ds.Content{},
		&ds.BusinessProcess{},
		&ds.ProcessStep{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	if *seed {
		if err := seedData(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		log.Println("Database seeded successfully")
	}
}

// seedData заполняет базу тестовыми пользователями, категориями и процессом
func seedData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []ds.User{
		{Email: "admin@hanplaza.ru", Password: string(hash), Name: "Администратор", Role: role.Admin},
		{Email: "manager@hanplaza.ru", Password: string(hash), Name: "Менеджер", Role: role.Manager},
		{Email: "buyer@hanplaza.ru", Password: string(hash), Name: "Закупщик", Role: role.Buyer},
		{Email: "warehouse@hanplaza.ru", Password: string(hash), Name: "Складской работник", Role: role.Warehouse},
		{Email: "designer@hanplaza.ru", Password: string(hash), Name: "Дизайнер", Role: role.Designer},
		{Email: "logistics@hanplaza.ru", Password: string(hash), Name: "Логист", Role: role.Logistics},
	}
	for i := range users {
		if err := db.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			return err
		}
	}

	categories := []ds.Category{
		{Slug: "manager", Name: "Менеджер", Description: "Обучающие материалы для менеджеров по продажам", Icon: "briefcase", AllowedRoles: "manager,admin"},
		{Slug: "buyer", Name: "Закупщик", Description: "Видео для специалистов по закупкам", Icon: "shopping-cart", AllowedRoles: "buyer,admin"},
		{Slug: "warehouse", Name: "Складской работник", Description: "Инструкции для складского персонала", Icon: "package", AllowedRoles: "warehouse,admin"},
		{Slug: "designer", Name: "Дизайнер", Description: "Материалы для дизайнеров интерьеров", Icon: "palette", AllowedRoles: "designer,admin"},
		{Slug: "logistics", Name: "Логистика", Description: "Обучение для специалистов по логистике", Icon: "truck", AllowedRoles: "logistics,admin"},
		{Slug: "customer-service", Name: "Обслуживание клиентов", Description: "Тренинги по работе с клиентами", Icon: "headphones", AllowedRoles: "customer-service,admin"},
	}
	for i := range categories {
		if err := db.Where("slug = ?", categories[i].Slug).FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	content := ds.Content{
		ID:          "seed-content-complaints",
		Title:       "Работа с рекламациями",
		Description: "Порядок оформления рекламации от клиента",
		CategoryID:  categories[0].ID,
		Type:        ds.ContentTypeInstruction,
		Body:        "Пошаговый регламент обработки рекламаций.",
	}
	if err := db.Where("id = ?", content.ID).FirstOrCreate(&content).Error; err != nil {
		return err
	}

	process := ds.BusinessProcess{
		ID:           "seed-process-complaint",
		Name:         "Обработка рекламации",
		Description:  "От обращения клиента до решения",
		Departments:  datatypes.NewJSONSlice([]string{"Продажи", "Склад", "Логистика"}),
		AllowedRoles: "manager,logistics,admin",
		Steps: []ds.ProcessStep{
			{StepNumber: 1, Title: "Регистрация обращения", Responsible: "Менеджер", Duration: "1 день",
				RelatedContentIDs: datatypes.NewJSONSlice([]string{content.ID})},
			{StepNumber: 2, Title: "Проверка на складе", Responsible: "Складской работник", Duration: "2 дня",
				RelatedContentIDs: datatypes.NewJSONSlice([]string{})},
			{StepNumber: 3, Title: "Решение и ответ клиенту", Responsible: "Менеджер", Duration: "1 день",
				RelatedContentIDs: datatypes.NewJSONSlice([]string{})},
		},
	}
	return db.Where("id = ?", process.ID).FirstOrCreate(&process).Error
}
