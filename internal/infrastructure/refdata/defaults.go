package refdata

import "github.com/ecomarket/storefront-api/internal/domain/entity"

// Catálogo eco por defecto, usado cuando no hay products.json en el data dir.
var defaultProducts = []entity.Product{
	{ID: "1", Name: "Эко-бутылка", Description: "Многоразовая бутылка из переработанного пластика, 0.5 л", Price: 450, Icon: "🍼", Category: "accessories"},
	{ID: "2", Name: "Эко-сумка", Description: "Шоппер из переработанных ПЭТ-бутылок", Price: 350, Icon: "👜", Category: "accessories"},
	{ID: "3", Name: "Термокружка", Description: "Термокружка с двойными стенками, 350 мл", Price: 700, Icon: "☕", Category: "accessories"},
	{ID: "4", Name: "Блокнот из вторсырья", Description: "Блокнот А5, бумага 100% переработанная", Price: 200, Icon: "📓", Category: "stationery"},
	{ID: "5", Name: "Набор ручек", Description: "Ручки из переработанного пластика, 3 шт.", Price: 150, Icon: "🖊️", Category: "stationery"},
	{ID: "6", Name: "Чехол для телефона", Description: "Биоразлагаемый чехол", Price: 550, Icon: "📱", Category: "accessories"},
	{ID: "7", Name: "Эко-брелок", Description: "Брелок из крышек от бутылок", Price: 100, Icon: "🔑", Category: "souvenirs"},
	{ID: "8", Name: "Футболка", Description: "Футболка из переработанного хлопка", Price: 1200, Icon: "👕", Category: "clothes"},
}

// Puntos de entrega por defecto (config del demo original).
var defaultPickupPoints = []entity.PickupPoint{
	{
		ID:           "main",
		DisplayName:  "Главный корпус",
		Address:      "ул. Ленина, 1",
		WorkingHours: "Пн-Пт 9:00-18:00",
		Contact:      "+7 (999) 123-45-67",
	},
	{
		ID:           "science",
		DisplayName:  "Научный корпус",
		Address:      "пр. Мира, 15",
		WorkingHours: "Пн-Сб 10:00-19:00",
		Contact:      "+7 (999) 123-45-68",
	},
}
