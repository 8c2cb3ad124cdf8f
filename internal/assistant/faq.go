package assistant

import (
	"context"
	"fmt"
	"strings"
)

// faqRule matches a question against fixed keywords. Latin keywords are
// checked on the lowercased question, Thai keywords on the original trimmed
// text (Thai has no case).
type faqRule struct {
	latin  []string
	thai   []string
	answer string
}

func (r faqRule) matches(q, qNorm string) bool {
	for _, k := range r.latin {
		if strings.Contains(qNorm, k) {
			return true
		}
	}
	for _, k := range r.thai {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}

// faqRules is evaluated in order and the first match wins. The order matters
// because keywords overlap ("pour" would also match future additions), so it
// must stay exactly as listed.
var faqRules = []faqRule{
	{
		latin:  []string{"french"},
		thai:   []string{"แฟรนช์"},
		answer: "วิธีชง French Press: ใส่กาแฟบดหยาบลงในหม้อ โรยลงและเทน้ำร้อน 90-96°C หมั่นนึ่ง 30 วินาที แล้วเทหมดเพิ่มพื้นให้ได้ 90-96°C เฟชเซ (plunger) โดยค่อยๆ กดลง 3-4 นาที ได้รสชาติเข้มข้นและเต็มบอดี้",
	},
	{
		latin:  []string{"espresso"},
		thai:   []string{"เอสเพรส", "เอสเพรสโซ"},
		answer: "วิธีชง เอสเพรสโซ: ใช้เครื่องชงเอสเพรสโซ ใส่กาแฟบดละเอียด (fine grind) ประมาณ 18-20 เมล็ดบด กดแรงพอสมควร (tamping) ขึ้นเครื่องชง ใช้น้ำที่อุณหภูมิ 92-96°C ความดัน 9 บาร์ ชงประมาณ 25-30 วินาที ได้น้ำกาแฟประมาณ 30 มล. ที่มีกลิ่นหอมและรสเข้มข้น",
	},
	{
		latin:  []string{"pour-over", "pour over", "pourover", "pour"},
		thai:   []string{"พัวร์"},
		answer: "วิธีชง pour-over: อุ่นตัวกรวยและกระดาษกรองด้วยน้ำร้อนก่อน ใส่กาแฟบดขนาดกลาง-หยาบ (อัตราส่วนน้ำต่อกาแฟประมาณ 15:1) เทน้ำรอบแรกเล็กน้อยให้กาแฟบลูม 30-45 วินาที แล้วค่อยๆ เทน้ำเป็นวงกลมจนได้ปริมาณที่ต้องการ ระดับอุณหภูมิน้ำประมาณ 92-96°C จะได้รสชาติที่ชัดเจนและสมดุล",
	},
	{
		latin:  []string{"arabica", "robusta"},
		thai:   []string{"อาราบิก้า", "โรบัสต้า"},
		answer: "ความแตกต่าง: Arabica ให้กลิ่นหอมซับซ้อนและรสชาติหวาน-เปรี้ยวเล็กน้อย มีกรดผลไม้ ส่วน Robusta มักให้คาเฟอีนมากกว่า รสเข้มและขม เหมาะสำหรับกาแฟที่ต้องการบอดี้หนาหรือผสมในเอสเพรสโซ่",
	},
	{
		latin:  []string{"preg", "pregnant"},
		thai:   []string{"สุขภาพ", "ผลกระทบ", "คนท้อง"},
		answer: "ผลกระทบต่อสุขภาพ: การดื่มกาแฟในปริมาณปกติ (1-3 แก้ว/วัน) สำหรับผู้ใหญ่สุขภาพดีมักปลอดภัย คาเฟอีนอาจส่งผลต่อการนอนหรือหัวใจในบางคน ผู้ตั้งครรภ์ควรจำกัดปริมาณและปรึกษาแพทย์ หากมีภาวะสุขภาพควรปรึกษาแพทย์ก่อน",
	},
	{
		latin:  []string{"storage"},
		thai:   []string{"เก็บ"},
		answer: "วิธีเก็บเมล็ดกาแฟ: เก็บเมล็ดในภาชนะทึบแสงและปิดสนิท หลีกเลี่ยงความชื้นและความร้อน เก็บที่อุณหภูมิห้องและบดเมื่อจะชงใช้งานเพื่อรักษากลิ่นหอมและรสชาติ",
	},
	{
		latin:  []string{"variety", "breed"},
		thai:   []string{"สายพันธุ์"},
		answer: "แนะนำสายพันธุ์กาแฟสำหรับเอสเพรสโซ: เลือกกาแฟคั่วเข้ม (dark roast) เช่น Brazilian Santos, Indonesian Sumatra หรอื Italian Roast ที่มีบอดี้หนาและรสขมหวม เหมาะสมำหรับการชงที่ต้องการ crema ที่สวยงาม",
	},
	{
		latin:  []string{"reduce bitterness"},
		thai:   []string{"ลด"},
		answer: "วิธีลดความขมของกาแฟ: ใช้น้ำอุณหภูมิไม่เกิน 96°C (ความร้อนจะทำให้ขม), ลดเวลาชง, หรือใช้กาแฟคั่วอ่อน แทน นอกจากนี้สามารถเพิ่มนม ครีม หรือน้ำตาลเพื่อลดความขมและรสชาติที่หนัก",
	},
	{
		thai:   []string{"ไม่ชอบ", "รสขม", "ไม่ชอบรสขม", "ไม่ชอบขม"},
		answer: "เมนูแนะนำสำหรับคนไม่ชอบรสขม: ลองเมนูที่ใส่นมเยอะขึ้น เช่น Latte หรือ Flat White, หรือเลือกกาแฟคั่วอ่อน (light roast) ที่มีความเปรี้ยว-หวานแทนความขม และเพิ่มไซรัปรสหวานหรือคาราเมลตามชอบ",
	},
}

const faqGuidance = "ขณะนี้ระบบ AI ยังไม่พร้อมใช้งาน แต่ฉันช่วยได้ด้วยคำแนะนำทั่วไป: - ถามเกี่ยวกับประเภทกาแฟ (เช่น Arabica, Robusta) - ถามเกี่ยวกับวิธีการชง (เช่น Espresso, Pour-over) - ถามเกี่ยวกับผลกระทบต่อสุขภาพ ขออภัย ฉันยังไม่สามารถเชื่อมต่อกับบริการ AI ได้ขณะนี้ แต่สามารถให้คำแนะนำทั่วไปเกี่ยวกับกาแฟได้ โปรดลองถามโดยระบุหัวข้อ เช่น 'วิธีชง', 'ประเภทกาแฟ' หรือ 'ผลกระทบต่อสุขภาพ'"

const faqApology = "ขออภัย ไม่สามารถประมวลผลคำถามได้ กรุณาลองใหม่"

const faqSystem = "You are a friendly and knowledgeable coffee expert and barista at Deluxe Cafe coffee shop. You help customers with coffee knowledge, product information, and brewing advice in Thai."

const faqPromptTemplate = `คุณเป็นผู้เชี่ยวชาญด้านกาแฟและยังเป็นเจ้าหน้าที่ของร้านกาแฟ Deluxe Cafe
กรุณาตอบคำถามต่อไปนี้เกี่ยวกับกาแฟ ประเภทกาแฟ วิธีการดื่ม สุขภาพ และสินค้าของเรา
ตอบอย่างเป็นมิตร สั้นกระชับ และมีประโยชน์ (ไม่เกิน 150 คำ)

คำถาม: %s

ตอบเป็นภาษาไทยเท่านั้น`

// Answer resolves a free-text coffee question. Canned rules are tried first
// in priority order; only an unmatched question reaches the external
// generator, and any generator failure turns into a fixed apology.
func (a *Assistant) Answer(ctx context.Context, question string) string {
	q := strings.TrimSpace(question)
	qNorm := strings.ToLower(q)

	for _, rule := range faqRules {
		if rule.matches(q, qNorm) {
			return rule.answer
		}
	}

	if a.gen == nil {
		return faqGuidance
	}

	answer, err := a.gen.Generate(ctx, GenerateRequest{
		System:      faqSystem,
		Prompt:      fmt.Sprintf(faqPromptTemplate, question),
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return faqApology
	}
	return answer
}
