package assistant

import (
	"context"
	"fmt"
)

const describeSystem = "You are a helpful coffee shop assistant that creates engaging product descriptions in Thai."

const describePromptTemplate = `สร้างคำอธิบายสินค้ากาแฟสั้นๆ (ไม่เกิน 100 คำ) สำหรับ:
ชื่อสินค้า: %s
%s

ให้รายละเอียดเกี่ยวกับ:
- คุณสมบัติของกาแฟ
- ลักษณะรสชาติ
- อันดับเหมาะสำหรับคนไหน

ตอบเป็นภาษาไทยเท่านั้น`

// Describe produces a short Thai marketing description for a product. With no
// generator configured it returns the deterministic branded template; a
// generator failure returns a distinct fixed fallback instead of an error.
func (a *Assistant) Describe(ctx context.Context, name string, price *float64) string {
	if a.gen == nil {
		return fmt.Sprintf("กาแฟพรีเมียม: %s", name)
	}

	priceInfo := ""
	if price != nil {
		priceInfo = fmt.Sprintf(" ราคา %g บาท", *price)
	}

	description, err := a.gen.Generate(ctx, GenerateRequest{
		System:      describeSystem,
		Prompt:      fmt.Sprintf(describePromptTemplate, name, priceInfo),
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return fmt.Sprintf("กาแฟพรีเมียม: %s - คุณภาพดี ลิ้มสดชื่น", name)
	}
	return description
}
