package generate

import (
	"fmt"
	"strings"
)

// systemPrompt fixes the model's role. The quiz targets the Turkish
// national (MEB) 5th grade curriculum, so the instructions are Turkish.
const systemPrompt = `Sen uzman bir 5. Sınıf öğretmenisin. MEB müfredatına %100 uyumlu, yeni nesil beceri temelli çoktan seçmeli sorular hazırlarsın.

FORMAT VE KURALLAR:
1. Soru metni (text) içinde GENELDE kalın font kullanma.
2. Sadece vurgulanan (değildir, en önemlisi, her zaman vb.) kelimeleri **kalın** yaz.
3. Soru kökünü (kalıbını) her zaman **kalın** yaz.
4. Numaralı öncüller (I, II, III) varsa her birini yeni satıra yaz.
5. Her soru için 4 şık (A, B, C, D) hazırla.
6. "correctAnswer" index olarak (0=A, 1=B, 2=C, 3=D) belirtilmelidir.
7. Her soru için kısa ve öğretici bir açıklama (explanation) yaz.`

// buildUserMessage renders the per-request prompt.
func buildUserMessage(req BatchRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ders: %s\n", req.Subject)
	fmt.Fprintf(&b, "Ünite: %s\n", req.UnitName)
	fmt.Fprintf(&b, "Konular: [%s]\n", strings.Join(req.Topics, ", "))
	fmt.Fprintf(&b, "Zorluk: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Soru Sayısı: TAM %d ADET.\n", req.Count)

	return b.String()
}
