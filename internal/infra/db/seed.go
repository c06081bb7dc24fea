package db

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// Seed は空のテーブルに初期データを入れる。
// 既にデータがある場合は何もしない。
func Seed(
	ctx context.Context,
	users repo.UserRepository,
	products repo.ProductRepository,
	shippingOptions repo.ShippingOptionRepository,
	hashPassword func(plain string) (string, error),
) error {
	if err := seedAdminUser(ctx, users, hashPassword); err != nil {
		return err
	}
	if err := seedProducts(ctx, products); err != nil {
		return err
	}
	return seedShippingOptions(ctx, shippingOptions)
}

func seedAdminUser(ctx context.Context, users repo.UserRepository, hashPassword func(string) (string, error)) error {
	if _, err := users.FindByUsername(ctx, "admin"); err == nil {
		return nil
	}

	hash, err := hashPassword("admin")
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	return users.Create(ctx, admin)
}

func seedProducts(ctx context.Context, products repo.ProductRepository) error {
	count, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	//価格はセント表記
	seed := []model.Product{
		newProduct("Smart TV 4K 55 inch", "Ultra HD smart television with HDR and built-in streaming apps.", 49999, 59999, "Electronics", "https://placehold.co/600x400/333/FFF?text=Smart+TV", true, 5),
		newProduct("Wireless Bluetooth Headphones", "Noise-cancelling over-ear headphones with 30-hour battery life.", 14999, 19999, "Electronics", "https://placehold.co/600x400/555/FFF?text=Headphones", true, 12),
		newProduct("Pro Gaming Mouse", "Ergonomic gaming mouse with customizable RGB and 16,000 DPI sensor.", 7999, 9999, "Electronics", "https://placehold.co/600x400/444/FFF?text=Gaming+Mouse", true, 0),
		newProduct("Portable Power Bank 20000mAh", "High-capacity power bank to charge your devices on the go.", 3999, 3999, "Electronics", "https://placehold.co/600x400/666/FFF?text=Power+Bank", false, 50),
		newProduct("The Midnight Library", "A novel by Matt Haig about choices, regrets, and the infinite possibilities of life.", 1599, 1599, "Books", "https://placehold.co/600x400/007bff/FFF?text=Book+1", false, 100),
		newProduct("Atomic Habits", "An easy & proven way to build good habits & break bad ones by James Clear.", 1850, 2499, "Books", "https://placehold.co/600x400/28a745/FFF?text=Book+2", true, 20),
		newProduct("Sapiens: A Brief History of Humankind", "A critically acclaimed book by Yuval Noah Harari exploring human history.", 2200, 2999, "Books", "https://placehold.co/600x400/ffc107/333?text=Book+3", true, 8),
		newProduct("Espresso Coffee Machine", "Barista-grade espresso machine for a perfect cup of coffee at home.", 29999, 34999, "Home & Kitchen", "https://placehold.co/600x400/dc3545/FFF?text=Coffee+Machine", true, 3),
		newProduct("Air Fryer XL", "Large capacity air fryer for healthy, oil-free cooking.", 9999, 9999, "Home & Kitchen", "https://placehold.co/600x400/6f42c1/FFF?text=Air+Fryer", false, 45),
		newProduct("Robotic Vacuum Cleaner", "Smart vacuum that automatically cleans your floors.", 24950, 29999, "Home & Kitchen", "https://placehold.co/600x400/fd7e14/FFF?text=Robot+Vacuum", true, 5),
		newProduct("Classic Leather Jacket", "Timeless men's genuine leather jacket for a stylish look.", 19999, 19999, "Fashion", "https://placehold.co/600x400/343a40/FFF?text=Leather+Jacket", false, 30),
		newProduct("Running Shoes", "Lightweight and breathable athletic shoes for men and women.", 8999, 9999, "Fashion", "https://placehold.co/600x400/17a2b8/FFF?text=Running+Shoes", true, 7),
		newProduct("Designer Sunglasses", "UV protection sunglasses with a modern, stylish frame.", 12000, 12000, "Fashion", "https://placehold.co/600x400/e83e8c/FFF?text=Sunglasses", false, 25),
	}

	for _, p := range seed {
		if _, err := products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedShippingOptions(ctx context.Context, shippingOptions repo.ShippingOptionRepository) error {
	count, err := shippingOptions.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return shippingOptions.CreateBulk(ctx, []model.ShippingOption{
		{Name: "Standard Shipping", Cost: 599, EstimatedDelivery: "3-7 business days"},
		{Name: "Express Shipping", Cost: 1299, EstimatedDelivery: "1-2 business days"},
		{Name: "Free Shipping", Cost: 0, EstimatedDelivery: "7-10 business days"},
	})
}

func newProduct(name, description string, price, originalPrice int64, category, imageURL string, onSale bool, stock int64) model.Product {
	return model.Product{
		Name:          name,
		Description:   description,
		Price:         price,
		OriginalPrice: originalPrice,
		Category:      category,
		ImageURL:      imageURL,
		OnSale:        onSale,
		Stock:         stock,
	}
}
