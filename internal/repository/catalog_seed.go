package repository

import (
	"time"

	"github.com/noah-isme/noosflare/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var seedSubjects = []models.Subject{
	{ID: "math", Name: "Математический анализ", Description: "Интегралы, производные, ряды", MaterialsCount: 156},
	{ID: "physics", Name: "Физика", Description: "Механика, термодинамика, оптика", MaterialsCount: 134},
	{ID: "programming", Name: "Программирование", Description: "Алгоритмы, структуры данных, ООП", MaterialsCount: 248},
	{ID: "english", Name: "Английский язык", Description: "Грамматика, лексика, разговорная практика", MaterialsCount: 89},
	{ID: "philosophy", Name: "Философия", Description: "История философии, логика, этика", MaterialsCount: 67},
	{ID: "literature", Name: "Литература", Description: "Русская и мировая литература", MaterialsCount: 92},
	{ID: "art", Name: "История искусств", Description: "Живопись, скульптура, архитектура", MaterialsCount: 73},
	{ID: "music", Name: "Музыка", Description: "Теория музыки, композиция, история", MaterialsCount: 42},
}

// seedMaterials holds only a sample per subject; declared subject counts are larger.
var seedMaterials = []models.Material{
	{
		ID:         "math-1",
		Title:      "Производные функций - подробный разбор",
		Kind:       models.KindVideo,
		Topic:      "Производные",
		Source:     "Курс \"Математический анализ I\" - Профессор Иванов А.П.",
		Author:     "Мария Иванова",
		Views:      342,
		Likes:      45,
		UploadDate: day(2025, 11, 5),
		Duration:   "45:30",
		SubjectID:  "math",
	},
	{
		ID:         "math-2",
		Title:      "Конспект по интегралам",
		Kind:       models.KindNotes,
		Topic:      "Интегралы",
		Source:     "Учебник Фихтенгольца, том 2",
		Author:     "Алексей Смирнов",
		Views:      567,
		Likes:      78,
		UploadDate: day(2025, 11, 3),
		Pages:      12,
		SubjectID:  "math",
	},
	{
		ID:         "math-3",
		Title:      "Пределы и непрерывность",
		Kind:       models.KindVideo,
		Topic:      "Пределы",
		Source:     "Курс \"Введение в анализ\" - МГУ",
		Author:     "Елена Петрова",
		Views:      234,
		Likes:      32,
		UploadDate: day(2025, 11, 1),
		Duration:   "38:15",
		SubjectID:  "math",
	},
	{
		ID:         "math-4",
		Title:      "Методы вычисления производных",
		Kind:       models.KindNotes,
		Topic:      "Производные",
		Source:     "Семинар по матанализу - Доцент Петров К.М.",
		Author:     "Дмитрий Козлов",
		Views:      445,
		Likes:      56,
		UploadDate: day(2025, 10, 28),
		Pages:      8,
		SubjectID:  "math",
	},
	{
		ID:         "math-5",
		Title:      "Определенные интегралы - практика",
		Kind:       models.KindVideo,
		Topic:      "Интегралы",
		Source:     "Онлайн-курс \"Высшая математика\"",
		Author:     "Ольга Новикова",
		Views:      198,
		Likes:      28,
		UploadDate: day(2025, 10, 25),
		Duration:   "52:40",
		SubjectID:  "math",
	},
	{
		ID:         "math-6",
		Title:      "Ряды Тейлора и Маклорена",
		Kind:       models.KindNotes,
		Topic:      "Ряды",
		Source:     "Учебник Кудрявцева \"Курс математического анализа\"",
		Author:     "Игорь Соколов",
		Views:      312,
		Likes:      41,
		UploadDate: day(2025, 10, 22),
		Pages:      15,
		SubjectID:  "math",
	},
	{
		ID:         "physics-1",
		Title:      "Законы Ньютона в деталях",
		Kind:       models.KindVideo,
		Topic:      "Механика",
		Source:     "Курс общей физики - Профессор Сивухин Д.В.",
		Author:     "Андрей Васильев",
		Views:      523,
		Likes:      67,
		UploadDate: day(2025, 11, 7),
		Duration:   "42:15",
		SubjectID:  "physics",
	},
	{
		ID:         "physics-2",
		Title:      "Термодинамика: первое начало",
		Kind:       models.KindNotes,
		Topic:      "Термодинамика",
		Source:     "Лекции по термодинамике - МФТИ",
		Author:     "Светлана Кузнецова",
		Views:      289,
		Likes:      34,
		UploadDate: day(2025, 11, 4),
		Pages:      10,
		SubjectID:  "physics",
	},
	{
		ID:         "physics-3",
		Title:      "Оптика: преломление и отражение",
		Kind:       models.KindVideo,
		Topic:      "Оптика",
		Source:     "Практикум по физике - Лабораторные работы",
		Author:     "Михаил Орлов",
		Views:      412,
		Likes:      52,
		UploadDate: day(2025, 10, 30),
		Duration:   "35:20",
		SubjectID:  "physics",
	},
	{
		ID:         "physics-4",
		Title:      "Электростатика и закон Кулона",
		Kind:       models.KindNotes,
		Topic:      "Электричество",
		Source:     "Учебник Иродова \"Задачи по общей физике\"",
		Author:     "Татьяна Морозова",
		Views:      367,
		Likes:      48,
		UploadDate: day(2025, 10, 27),
		Pages:      14,
		SubjectID:  "physics",
	},
	{
		ID:         "prog-1",
		Title:      "Алгоритмы сортировки",
		Kind:       models.KindVideo,
		Topic:      "Алгоритмы",
		Source:     "Курс \"Алгоритмы и структуры данных\" - СПбГУ",
		Author:     "Денис Павлов",
		Views:      891,
		Likes:      124,
		UploadDate: day(2025, 11, 8),
		Duration:   "56:45",
		SubjectID:  "programming",
	},
	{
		ID:         "prog-2",
		Title:      "ООП: Принципы SOLID",
		Kind:       models.KindNotes,
		Topic:      "ООП",
		Source:     "Семинар по объектно-ориентированному программированию",
		Author:     "Артем Волков",
		Views:      645,
		Likes:      89,
		UploadDate: day(2025, 11, 6),
		Pages:      18,
		SubjectID:  "programming",
	},
	{
		ID:         "prog-3",
		Title:      "Базы данных: SQL запросы",
		Kind:       models.KindVideo,
		Topic:      "Базы данных",
		Source:     "Онлайн-курс \"Введение в базы данных\"",
		Author:     "Екатерина Белова",
		Views:      734,
		Likes:      98,
		UploadDate: day(2025, 11, 2),
		Duration:   "48:30",
		SubjectID:  "programming",
	},
	{
		ID:         "english-1",
		Title:      "Грамматика: Present Perfect",
		Kind:       models.KindVideo,
		Topic:      "Грамматика",
		Source:     "Курс английского языка - Cambridge English",
		Author:     "Анна Смирнова",
		Views:      456,
		Likes:      61,
		UploadDate: day(2025, 11, 9),
		Duration:   "32:15",
		SubjectID:  "english",
	},
	{
		ID:         "english-2",
		Title:      "Список полезных фразовых глаголов",
		Kind:       models.KindNotes,
		Topic:      "Лексика",
		Source:     "Учебник English Vocabulary in Use",
		Author:     "Ирина Попова",
		Views:      378,
		Likes:      47,
		UploadDate: day(2025, 11, 5),
		Pages:      6,
		SubjectID:  "english",
	},
	{
		ID:         "english-3",
		Title:      "Разговорная практика: ежедневные ситуации",
		Kind:       models.KindVideo,
		Topic:      "Разговорная практика",
		Source:     "Языковой клуб университета",
		Author:     "Владислав Соколов",
		Views:      512,
		Likes:      73,
		UploadDate: day(2025, 10, 31),
		Duration:   "28:40",
		SubjectID:  "english",
	},
	{
		ID:         "phil-1",
		Title:      "Античная философия: Сократ и Платон",
		Kind:       models.KindVideo,
		Topic:      "История философии",
		Source:     "Курс \"История западной философии\" - МГУ",
		Author:     "Максим Лебедев",
		Views:      267,
		Likes:      38,
		UploadDate: day(2025, 11, 6),
		Duration:   "51:20",
		SubjectID:  "philosophy",
	},
	{
		ID:         "phil-2",
		Title:      "Основы формальной логики",
		Kind:       models.KindNotes,
		Topic:      "Логика",
		Source:     "Учебник Ивина \"Логика\"",
		Author:     "Ольга Федорова",
		Views:      198,
		Likes:      26,
		UploadDate: day(2025, 11, 1),
		Pages:      11,
		SubjectID:  "philosophy",
	},
	{
		ID:         "lit-1",
		Title:      "Анализ романа \"Война и мир\"",
		Kind:       models.KindVideo,
		Topic:      "Русская литература",
		Source:     "Лекции по русской литературе XIX века",
		Author:     "Наталья Крылова",
		Views:      423,
		Likes:      58,
		UploadDate: day(2025, 11, 7),
		Duration:   "44:25",
		SubjectID:  "literature",
	},
	{
		ID:         "lit-2",
		Title:      "Конспект: Поэзия Серебряного века",
		Kind:       models.KindNotes,
		Topic:      "Русская литература",
		Source:     "Семинар по литературе ХХ века",
		Author:     "Виктория Зайцева",
		Views:      312,
		Likes:      42,
		UploadDate: day(2025, 11, 3),
		Pages:      9,
		SubjectID:  "literature",
	},
	{
		ID:         "art-1",
		Title:      "Эпоха Возрождения: великие мастера",
		Kind:       models.KindVideo,
		Topic:      "Живопись",
		Source:     "Курс истории искусств - Эрмитаж",
		Author:     "Евгений Романов",
		Views:      289,
		Likes:      41,
		UploadDate: day(2025, 11, 5),
		Duration:   "39:50",
		SubjectID:  "art",
	},
	{
		ID:         "art-2",
		Title:      "Импрессионизм в живописи",
		Kind:       models.KindNotes,
		Topic:      "Живопись",
		Source:     "Лекции по истории искусств XIX века",
		Author:     "Анастасия Волкова",
		Views:      234,
		Likes:      33,
		UploadDate: day(2025, 10, 29),
		Pages:      13,
		SubjectID:  "art",
	},
	{
		ID:         "music-1",
		Title:      "Основы гармонии и аккордов",
		Kind:       models.KindVideo,
		Topic:      "Теория музыки",
		Source:     "Курс теории музыки - Консерватория",
		Author:     "Сергей Николаев",
		Views:      178,
		Likes:      24,
		UploadDate: day(2025, 11, 4),
		Duration:   "36:15",
		SubjectID:  "music",
	},
	{
		ID:         "music-2",
		Title:      "История классической музыки",
		Kind:       models.KindNotes,
		Topic:      "История",
		Source:     "Учебник \"Музыкальная литература\"",
		Author:     "Людмила Григорьева",
		Views:      145,
		Likes:      19,
		UploadDate: day(2025, 10, 26),
		Pages:      16,
		SubjectID:  "music",
	},
}

var seedUploadTopics = map[string][]string{
	"math":        {"Производные", "Интегралы", "Пределы", "Ряды"},
	"physics":     {"Механика", "Термодинамика", "Оптика", "Электричество"},
	"programming": {"Алгоритмы", "ООП", "Базы данных", "Веб-разработка"},
	"english":     {"Грамматика", "Лексика", "Разговорная практика", "Письмо"},
	"philosophy":  {"История философии", "Логика", "Этика", "Онтология"},
	"literature":  {"Русская литература", "Мировая литература", "Поэзия", "Проза"},
	"art":         {"Живопись", "Скульптура", "Архитектура", "История стилей"},
	"music":       {"Теория музыки", "История", "Композиция", "Инструменты"},
}
