package database

import (
	"log"
	"strings"

	"cafe-backend/internal/config"
	"cafe-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(openDialector(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	Seed(DB)

	log.Println("Database connection ready. Migration completed.")
}

// openDialector picks the driver from the DSN: postgres connection strings
// keep the managed-database path, anything else is treated as a sqlite file.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

type seedProduct struct {
	Name        string
	Price       float64
	ImageURL    string
	Description string
}

var sampleProducts = []seedProduct{
	{
		Name:        "Arabica Premium",
		Price:       350.00,
		ImageURL:    "https://images.unsplash.com/photo-1559056199-641a0ac8b3f7?w=300",
		Description: "กาแฟอาราบิก้าคุณภาพสูงจากเอธิโอเปีย หอม นุ่ม ลิ้มรสความหวานธรรมชาติ",
	},
	{
		Name:        "Robusta Dark Roast",
		Price:       280.00,
		ImageURL:    "https://images.unsplash.com/photo-1511537190424-6f4ee62583d1?w=300",
		Description: "กาแฟโรบัสต้าคั่วเข้ม รสชาติกำลังขาด ที่สุด เหมาะสำหรับสายเข้มข้น",
	},
	{
		Name:        "Colombian Geisha",
		Price:       420.00,
		ImageURL:    "https://images.unsplash.com/photo-1556742208-999c70e886c7?w=300",
		Description: "กาแฟโคลัมเบีย หอม นุ่ม สด ที่สุดในเซ็ต ลูกค้าแนะนำ",
	},
	{
		Name:        "Espresso Blend",
		Price:       320.00,
		ImageURL:    "https://images.unsplash.com/photo-1541895917989-a2eca1e2b7c9?w=300",
		Description: "ผสมกาแฟสำหรับเอสเพรสโซ่ต้อง เนื้อสม่ำเสมอ หอมมากๆ",
	},
	{
		Name:        "Ethiopian Natural",
		Price:       380.00,
		ImageURL:    "https://images.unsplash.com/photo-1557804506-669714531201?w=300",
		Description: "กาแฟเอธิโอเปีย บอดี้กลาง ผสมผลไม้ ลูกค้าโปรดปรานมาก",
	},
	{
		Name:        "Kenyan AA",
		Price:       400.00,
		ImageURL:    "https://images.unsplash.com/photo-1559525839-106d979bb24d?w=300",
		Description: "กาแฟเคนยา เกรดพรีเมียม รสชาติสดใจ มีความเปรี้ยวลงตัว",
	},
	{
		Name:        "Vietnam Weasel",
		Price:       450.00,
		ImageURL:    "https://images.unsplash.com/photo-1455857671898-eda6e21cc925?w=300",
		Description: "กาแฟเวียดนาม รสชาติเฉพาะตัว หนา หวาน เข้มข้น สำหรับคนชอบกาแฟ",
	},
	{
		Name:        "Brazilian Santos",
		Price:       300.00,
		ImageURL:    "https://images.unsplash.com/photo-1577934212624-a1f3a32b9b62?w=300",
		Description: "กาแฟบราซิล เนื้อหนา หวาน ความสีชอคโกแลต เหมาะสำหรับเรียนรู้",
	},
}

// Seed inserts the sample catalog once, a non-empty table is left untouched.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Printf("%d products already exist in database. Skipping seed.", count)
		return
	}

	for _, sp := range sampleProducts {
		p := models.Product{
			Name:        sp.Name,
			Price:       sp.Price,
			ImageURL:    sp.ImageURL,
			Description: sp.Description,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Failed to seed product %q: %v", sp.Name, err)
		}
	}
	log.Printf("Seeded %d sample products.", len(sampleProducts))
}
