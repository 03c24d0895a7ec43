// Package seed наполняет пустое хранилище каталогом магазина:
// товары, стартовые отзывы и демо-покупатели.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/service"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func str(s string) *string { return &s }

var seedProducts = []domain.Product{
	{
		Name:        "Gulab Jamun",
		Category:    domain.CategorySweets,
		Description: "Soft, spongy and melt-in-mouth gulab jamuns soaked in sugar syrup flavored with cardamom and rose water.",
		ImageURL:    "https://images.unsplash.com/photo-1575793966773-7aa7033a2da1?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=500&q=80",
		Price250g:   price("199"), Price500g: price("349"), Price1kg: price("499"),
		Featured: true, Rating: "5", ReviewCount: 24,
	},
	{
		Name:        "Kaju Katli",
		Category:    domain.CategorySweets,
		Description: "A popular Indian sweet made with cashew nuts and sugar, topped with edible silver foil.",
		ImageURL:    "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=500&q=80",
		Price250g:   price("299"), Price500g: price("449"), Price1kg: price("599"),
		Featured: true, Rating: "4.5", ReviewCount: 36,
	},
	{
		Name:        "Mysore Pak",
		Category:    domain.CategorySweets,
		Description: "A rich sweet made with generous amounts of ghee, sugar and gram flour. A specialty from Mysore.",
		ImageURL:    "https://images.unsplash.com/photo-1567337710282-00832b415979?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=500&q=80",
		Price250g:   price("249"), Price500g: price("399"), Price1kg: price("549"),
		Featured: true, Rating: "5", ReviewCount: 18,
	},
	{
		Name:        "Jalebi",
		Category:    domain.CategorySweets,
		Description: "Crispy, pretzel-shaped sweets made from deep-fried batter soaked in sugar syrup. A popular Indian dessert.",
		ImageURL:    "https://images.unsplash.com/photo-1601499979807-622c7c1704fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=500&q=80",
		Price250g:   price("179"), Price500g: price("299"), Price1kg: price("399"),
		Featured: true, Rating: "4", ReviewCount: 29,
	},
	{
		Name:        "Rasgulla",
		Category:    domain.CategorySweets,
		Description: "Soft, spongy balls made from cottage cheese and semolina, soaked in light sugar syrup.",
		ImageURL:    "https://images.unsplash.com/photo-1619420567276-380febe9d37e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("199"), Price500g: price("349"), Price1kg: price("450"),
		Rating: "4.5", ReviewCount: 24,
	},
	{
		Name:        "Kaju Burfi",
		Category:    domain.CategorySweets,
		Description: "A rich Indian fudge made with cashew nuts, sugar, and cardamom.",
		ImageURL:    "https://images.unsplash.com/photo-1610508500445-a4592435e27e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("299"), Price500g: price("499"), Price1kg: price("650"),
		Rating: "5", ReviewCount: 36,
	},
	{
		Name:        "Milk Cake",
		Category:    domain.CategorySweets,
		Description: "A dense, sweet cake made by slowly cooking milk and sugar together until they caramelize.",
		ImageURL:    "https://images.unsplash.com/photo-1615280825886-070bc98d4d68?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("249"), Price500g: price("399"), Price1kg: price("550"),
		Rating: "4", ReviewCount: 18,
	},
	{
		Name:        "Aloo Bhujia",
		Category:    domain.CategoryNamkeens,
		Description: "A crispy, spicy Indian snack made with potatoes, besan (gram flour) and spices.",
		ImageURL:    "https://images.unsplash.com/photo-1528975604071-b4dc52a2d18c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("149"), Price500g: price("249"), Price1kg: price("350"),
		Rating: "4.5", ReviewCount: 29,
	},
	{
		Name:        "Mango Pickle",
		Category:    domain.CategoryPickles,
		Description: "A spicy, tangy pickle made with raw mangoes, spices and oil. Perfect accompaniment to Indian meals.",
		ImageURL:    "https://images.unsplash.com/photo-1596042100322-62c28764ef0f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("179"), Price500g: price("299"), Price1kg: price("399"),
		Rating: "4.5", ReviewCount: 16,
	},
	{
		Name:        "Besan Ladoo",
		Category:    domain.CategorySweets,
		Description: "Sweet balls made from roasted gram flour, ghee and sugar, flavored with cardamom.",
		ImageURL:    "https://images.unsplash.com/photo-1590690731758-7ead2c57a838?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300&q=80",
		Price250g:   price("199"), Price500g: price("349"), Price1kg: price("499"),
		Rating: "4.5", ReviewCount: 22,
	},
}

var seedReviews = []domain.Review{
	{
		ProductID: 1,
		Name:      "Rajesh Kumar",
		Rating:    5,
		Comment:   "Absolutely love the sweets from Alluraiah! Their Gulab Jamun brings back memories of my childhood. The quality and taste never disappoint.",
		ImageURL:  str("https://randomuser.me/api/portraits/men/32.jpg"),
	},
	{
		ProductID: 2,
		Name:      "Vikram Singh",
		Rating:    4,
		Comment:   "I ordered a box of assorted sweets for Diwali, and everyone was impressed! The packaging was beautiful, and the sweets tasted incredibly fresh.",
		ImageURL:  str("https://randomuser.me/api/portraits/men/75.jpg"),
	},
}

var seedUsers = []domain.User{
	{Name: "Aryan", Phone: "9876543210"},
	{Name: "Riya", Phone: "9876501234"},
}

// Load заводит стартовые данные через сервисный слой, так что отзывы проходят
// через обычный пересчёт рейтинга.
func Load(ctx context.Context, catalog *service.CatalogService, reviewSvc *service.ReviewService, auth *service.AuthService) error {
	for _, p := range seedProducts {
		if _, err := catalog.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	for _, r := range seedReviews {
		if _, err := reviewSvc.Add(ctx, r); err != nil {
			return fmt.Errorf("seed review for product %d: %w", r.ProductID, err)
		}
	}
	for _, u := range seedUsers {
		if _, err := auth.Register(ctx, u.Name, u.Phone, ""); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Name, err)
		}
	}
	return nil
}
