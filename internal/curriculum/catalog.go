package curriculum

// Subject display names. The Turkish names double as the identifiers sent
// to the question generator, so they must not be translated or reworded.
const (
	Turkish  = "Türkçe"
	Math     = "Matematik"
	Science  = "Fen Bilimleri"
	Social   = "Sosyal Bilgiler"
	Religion = "Din Kültürü ve Ahlak Bilgisi"
	English  = "İngilizce"
)

// catalog is the fixed 5th grade (MEB) curriculum. Loaded once, never mutated.
var catalog = []Subject{
	{
		Name:            Turkish,
		Icon:            "📖",
		Color:           "#F43F5E",
		TimePerQuestion: 90,
		Units: []Unit{
			{ID: "t1", Name: "1. Bölüm: Sözcükte Anlam", Topics: []string{"Çok anlamlılık", "Gerçek/Mecaz/Terim", "Eş/Zıt/Yakın Anlam", "Deyim/Atasözü"}},
			{ID: "t2", Name: "2. Bölüm: Cümlede Anlam", Topics: []string{"Öznel/Nesnel", "Örtülü Anlam", "Cümle Tamamlama", "Duygu İfadeleri"}},
			{ID: "t3", Name: "3. Bölüm: Metinde Anlam", Topics: []string{"Metin Türleri", "Hikaye Unsurları", "Paragraf Yapısı", "Söz Sanatları"}},
			{ID: "t4", Name: "4. Bölüm: Dil Bilgisi", Topics: []string{"İsimler", "Sıfatlar", "Zamirler"}},
			{ID: "t5", Name: "5. Bölüm: Beceri Temelli Sorular", Topics: []string{"Sözel Mantık", "Görsel Yorumlama", "Grafik/Tablo Okuma"}},
			{ID: "t6", Name: "6. Bölüm: Yazım ve Noktalama", Topics: []string{"Büyük Harfler", "Sayıların Yazımı", "Noktalama İşaretleri"}},
		},
	},
	{
		Name:            Math,
		Icon:            "🧮",
		Color:           "#6366F1",
		TimePerQuestion: 120,
		Units: []Unit{
			{ID: "m1", Name: "1. Tema: Geometrik Şekiller", Topics: []string{"Temel Kavramlar", "Açılar", "Çokgenler", "Üçgen Çeşitleri"}},
			{ID: "m2", Name: "2. Tema: Sayılar ve Nicelikler - I", Topics: []string{"Doğal Sayılar", "Dört İşlem", "Tahmin", "Problemler"}},
			{ID: "m3", Name: "3. Tema: Geometrik Nicelikler", Topics: []string{"Dikdörtgenin Çevresi", "Alan Hesaplama", "Çevre-Alan İlişkisi"}},
			{ID: "m4", Name: "4. Tema: Sayılar ve Nicelikler - II", Topics: []string{"Kesirler", "Ondalık Gösterim", "Yüzdeler"}},
			{ID: "m5", Name: "5. Tema: İstatistiksel Araştırma", Topics: []string{"Veri Toplama", "Sütun Grafiği", "Daire Grafiği"}},
			{ID: "m6", Name: "6. Tema: İşlemlerle Cebirsel Düşünme", Topics: []string{"Eşitlik", "İşlem Önceliği", "Karesi/Küpü", "Örüntü/Algoritma"}},
			{ID: "m7", Name: "7. Tema: Veriden Olasılığa", Topics: []string{"Olayların Olasılığı", "Olasılık Çeşitleri"}},
		},
	},
	{
		Name:            Science,
		Icon:            "🔬",
		Color:           "#10B981",
		TimePerQuestion: 100,
		Units: []Unit{
			{ID: "f1", Name: "1. Ünite: Gökyüzündeki Komşularımız", Topics: []string{"Güneş ve Ay", "Dünya ile İlişkiler"}},
			{ID: "f2", Name: "2. Ünite: Kuvveti Tanıyalım", Topics: []string{"Kuvvet Ölçümü", "Kütle ve Ağırlık", "Sürtünme"}},
			{ID: "f3", Name: "3. Ünite: Canlıların Yapısı", Topics: []string{"Hücre", "Destek ve Hareket Sistemi"}},
			{ID: "f4", Name: "4. Ünite: Işığın Etkileşimi", Topics: []string{"Işığın Yayılması", "Tam Gölge Oluşumu"}},
			{ID: "f5", Name: "5. Ünite: Maddenin Doğası", Topics: []string{"Tanecikli Yapı", "Isı ve Sıcaklık", "Hal Değişimi"}},
			{ID: "f6", Name: "6. Ünite: Yaşamımızdaki Elektrik", Topics: []string{"Devre Sembolleri", "Ampul Parlaklığı"}},
			{ID: "f7", Name: "7. Ünite: Geri Dönüşüm", Topics: []string{"Evsel Atıklar", "Çevre Koruma"}},
		},
	},
	{
		Name:            Social,
		Icon:            "🌍",
		Color:           "#F97316",
		TimePerQuestion: 60,
		Units: []Unit{
			{ID: "s1", Name: "1. Öğrenme Alanı: Birlikte Yaşamak", Topics: []string{"Gruplar ve Roller", "Yardımlaşma"}},
			{ID: "s2", Name: "2. Öğrenme Alanı: Evimiz Dünya", Topics: []string{"Göreceli Konum", "Afetler", "Komşu Ülkeler"}},
			{ID: "s3", Name: "3. Öğrenme Alanı: Ortak Mirasımız", Topics: []string{"Anadolu Medeniyetleri", "Mezopotamya"}},
			{ID: "s4", Name: "4. Öğrenme Alanı: Demokrasimiz", Topics: []string{"Cumhuriyet", "Hak ve Sorumluluklar"}},
			{ID: "s5", Name: "5. Öğrenme Alanı: Ekonomi", Topics: []string{"Bütçe Planlama", "Kaynak Kullanımı"}},
			{ID: "s6", Name: "6. Öğrenme Alanı: Teknoloji", Topics: []string{"Toplumsal Etki", "Bilinçli Kullanım"}},
		},
	},
	{
		Name:            Religion,
		Icon:            "🕌",
		Color:           "#14B8A6",
		TimePerQuestion: 60,
		Units: []Unit{
			{ID: "d1", Name: "1. Ünite: Allah İnancı", Topics: []string{"Evrendeki Düzen", "İhlas Suresi"}},
			{ID: "d2", Name: "2. Ünite: Namaz", Topics: []string{"Namazın Kılınışı", "Tahiyyat Duası"}},
			{ID: "d3", Name: "3. Ünite: Kur'an-ı Kerim", Topics: []string{"Kur'an'ın Düzeni", "Kevser Suresi"}},
			{ID: "d4", Name: "4. Ünite: Peygamber Kıssaları", Topics: []string{"Peygamberlik Kavramı", "Kureyş Suresi"}},
			{ID: "d5", Name: "5. Ünite: Mimaride Dini Motifler", Topics: []string{"Cami Bölümleri", "Dinin Etkisi"}},
		},
	},
	{
		Name:            English,
		Icon:            "🇬🇧",
		Color:           "#2563EB",
		TimePerQuestion: 75,
		Units: []Unit{
			{ID: "e0", Name: "Starter: Welcome!", Topics: []string{"Numbers", "Colors", "Classroom objects", "Verb Be"}},
			{ID: "e1", Name: "Unit 1: Friends and Family", Topics: []string{"Describing people", "Have got", "Possessives"}},
			{ID: "e2", Name: "Unit 2: That's Life!", Topics: []string{"Daily routines", "Present Simple", "Adverbs of frequency"}},
			{ID: "e3", Name: "Unit 3: School Days", Topics: []string{"Subjects", "Can/Can't", "Likes/Dislikes"}},
			{ID: "e4", Name: "Unit 4: You Are What You Eat", Topics: []string{"Food & Drink", "Countable/Uncountable", "Some/Any"}},
			{ID: "e5", Name: "Unit 5: What's Your Style?", Topics: []string{"Clothes", "Present Continuous vs Simple"}},
			{ID: "e6", Name: "Unit 6: Sport for Life", Topics: []string{"Sports verbs", "Comparatives & Superlatives"}},
			{ID: "e7", Name: "Unit 7: Amazing Animals", Topics: []string{"Was/Were", "Past Simple", "Animals adjectives"}},
			{ID: "e8", Name: "Unit 8: Lost and Found", Topics: []string{"Places in town", "Past Simple Qs", "Wh- Questions"}},
			{ID: "e9", Name: "Unit 9: Summer Fun", Topics: []string{"Will/Won't", "Be going to", "Holiday activities"}},
		},
	},
}
