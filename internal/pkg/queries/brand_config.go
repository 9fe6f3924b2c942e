package queries

const GetBrandConfigBySlug = `
	SELECT id, slug, display_name, primary_color, logo_url, support_phone, support_email, updated_at
	FROM brand_configs
	WHERE slug = $1`
